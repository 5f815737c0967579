// Package i18n loads the embedded UI translations and resolves a per-request
// localizer from Accept-Language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message ids used by the landing page.
const (
	MsgNavLogin        = "nav.login"
	MsgNavSignup       = "nav.signup"
	MsgNavLogout       = "nav.logout"
	MsgHeroTagline     = "hero.tagline"
	MsgHeroExplore     = "hero.explore"
	MsgHeroVideos      = "hero.videos"
	MsgCoursesTitle    = "courses.title"
	MsgCoursesEnroll   = "courses.enroll"
	MsgCoursesEmpty    = "courses.empty"
	MsgFooterFollow    = "footer.follow"
	MsgFooterConnect   = "footer.connect"
	MsgFooterYouTube   = "footer.youtube"
	MsgFooterTelegram  = "footer.telegram"
	MsgFooterGitHub    = "footer.github"
	MsgFooterCopyright = "footer.copyright"
	MsgFooterTerms     = "footer.terms"
	MsgFooterPrivacy   = "footer.privacy"
	MsgFooterRefund    = "footer.refund"
	MsgLogoutFailed    = "toast.logout_failed"
	MsgLogoutSuccess   = "toast.logout_success"
	MsgLogoutPending   = "toast.logout_pending"
	MsgTooManyRequests = "toast.too_many_requests"
	MsgCSRFFailed      = "toast.csrf_failed"
	MsgPageTitle       = "page.title"
	MsgErrorTitle      = "error.title"
	MsgErrorNotFound   = "error.not_found"
	MsgErrorBackHome   = "error.back_home"
)

// Catalog holds every loaded translation. It is immutable after New and safe
// for concurrent use.
type Catalog struct {
	bundle   *i18n.Bundle
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
}

// New parses the embedded locale files. defaultLang is used when a request
// has no supported Accept-Language match.
func New(defaultLang string) (*Catalog, error) {
	return NewFromFS(localeFS, "locales", defaultLang)
}

// NewFromFS parses every *.yaml file in dir. File names carry the language tag (en.yaml).
func NewFromFS(fsys fs.FS, dir, defaultLang string) (*Catalog, error) {
	fallback, err := language.Parse(strings.TrimSpace(defaultLang))
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", e.Name(), err)
		}
	}

	// The fallback goes first so the matcher prefers it on ties.
	tags := []language.Tag{fallback}
	for _, t := range bundle.LanguageTags() {
		if t != fallback {
			tags = append(tags, t)
		}
	}

	return &Catalog{
		bundle:   bundle,
		fallback: fallback,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Languages lists the supported tags, fallback first.
func (c *Catalog) Languages() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// For returns a localizer for an Accept-Language header value.
func (c *Catalog) For(acceptLanguage string) *Localizer {
	tag := c.fallback
	if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(prefs) > 0 {
		_, idx, conf := c.matcher.Match(prefs...)
		if conf != language.No {
			tag = c.tags[idx]
		}
	}
	return &Localizer{
		lang: tag,
		l:    i18n.NewLocalizer(c.bundle, tag.String(), c.fallback.String()),
	}
}

// Localizer translates message ids for one language.
type Localizer struct {
	lang language.Tag
	l    *i18n.Localizer
}

// Lang is the BCP 47 tag used for the html lang attribute.
func (l *Localizer) Lang() string { return l.lang.String() }

// T translates id. Unknown ids are returned as-is.
func (l *Localizer) T(id string) string {
	return l.TData(id, nil)
}

// TData translates id with template data.
func (l *Localizer) TData(id string, data map[string]any) string {
	if l == nil || l.l == nil {
		return id
	}
	msg, err := l.l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}
