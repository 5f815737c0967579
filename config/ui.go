package config

import "strings"

// UIConfig holds landing page content that varies per deployment.
type UIConfig struct {
	// BrandName is shown in the navbar, hero and footer.
	BrandName string `env:"BRAND_NAME" envDefault:"Learnify"`

	// VideoURL is the external video channel opened from the hero section.
	VideoURL string `env:"VIDEO_URL" envDefault:"https://www.youtube.com/learncodingofficial"`

	// DefaultLocale is used when Accept-Language has no supported match.
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// CopyrightYear is printed in the footer. It is fixed rather than derived
	// from the clock so identical state renders identical pages.
	CopyrightYear int `env:"COPYRIGHT_YEAR" envDefault:"2025"`
}

// Sanitize trims values and restores defaults.
func (u *UIConfig) Sanitize() {
	u.BrandName = strings.TrimSpace(u.BrandName)
	if u.BrandName == "" {
		u.BrandName = "Learnify"
	}
	u.VideoURL = strings.TrimSpace(u.VideoURL)
	u.DefaultLocale = strings.TrimSpace(u.DefaultLocale)
	if u.DefaultLocale == "" {
		u.DefaultLocale = "en"
	}
	if u.CopyrightYear <= 0 {
		u.CopyrightYear = 2025
	}
}
