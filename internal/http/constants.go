package httpx

// CurrentPage constants define the page identifiers used in templates.
const (
	PageLanding  = "landing"
	PageNotFound = "not-found"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

const (
	// DefaultMarkerCookie is the session marker written by the external login flow.
	DefaultMarkerCookie = "user"
	// FlashCookieName carries the id of pending one-shot toasts.
	FlashCookieName = "flash_id"
	// ToastEvent is the htmx client event that shows a toast.
	ToastEvent = "showToast"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageLanding:  "landing-content",
	PageNotFound: "not-found-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to landing-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "landing-content"
}
