package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/domain/session"
	"github.com/learnify/learnify-ui/internal/http/ui/viewmodel"
	"github.com/learnify/learnify-ui/internal/i18n"
	"github.com/learnify/learnify-ui/internal/notify"
	"github.com/learnify/learnify-ui/internal/ports"
	"github.com/learnify/learnify-ui/internal/service"
)

// LandingPageService is the slice of the landing service the UI needs.
type LandingPageService interface {
	Load(ctx context.Context, sess session.Context, creds ports.Credentials) landing.State
	Logout(ctx context.Context, in service.LogoutInput, n notify.Notifier) (service.LogoutResult, error)
}

var _ LandingPageService = (*service.LandingService)(nil)

// SiteOptions is deployment-specific page content.
type SiteOptions struct {
	Brand         string
	VideoURL      string
	CopyrightYear int
}

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T       *TemplateRenderer
	Landing LandingPageService
	Flash   ports.FlashStore
	Catalog *i18n.Catalog
	Site    SiteOptions

	MarkerCookie string
	CSRFCookie   string
	CookieDomain string
	FlashTTL     time.Duration // lifetime of the flash cookie
	IsDev        bool          // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) markerCookie() string {
	if h.MarkerCookie == "" {
		return DefaultMarkerCookie
	}
	return h.MarkerCookie
}

func (h *UIHandlers) csrfCookie() string {
	if h.CSRFCookie == "" {
		return DefaultCSRFCookieName
	}
	return h.CSRFCookie
}

// localizer returns the request localizer, falling back to the catalog.
// It returns nil only when neither is configured.
func (h *UIHandlers) localizer(r *http.Request) *i18n.Localizer {
	if l := LocalizerFromContext(r.Context()); l != nil {
		return l
	}
	if h.Catalog != nil {
		return h.Catalog.For(r.Header.Get("Accept-Language"))
	}
	return nil
}

// translator wraps localizer so a missing one stays a nil interface.
func (h *UIHandlers) translator(r *http.Request) viewmodel.Translator {
	if l := h.localizer(r); l != nil {
		return l
	}
	return nil
}

// text localizes id, using fallback when no localizer is configured.
func (h *UIHandlers) text(r *http.Request, id, fallback string) string {
	if l := h.localizer(r); l != nil {
		return l.T(id)
	}
	return fallback
}

// PageMeta describes page-level metadata for layout rendering.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request context.
func (h *UIHandlers) buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		Lang:        "en",
		Brand:       h.Site.Brand,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}
	if l := h.localizer(r); l != nil {
		layout.Lang = l.Lang()
	}
	if s, ok := SessionFromContext(r.Context()); ok {
		layout.IsAuthenticated = s.Authenticated
	}
	return layout
}

// renderPage renders the full layout, or only the content block for htmx requests.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data viewmodel.LayoutProvider) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// A <title> element lets htmx update document.title on partial swaps.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if layout := data.LayoutData(); layout != nil {
		if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
			h.logger().Error("failed to write partial document title", "error", err)
			return
		}
	}
	if err := h.T.RenderPartial(w, r, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", RequestIDFromContext(r.Context()),
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<pre class="template-error">` +
			html.EscapeString(context) + "\n" +
			html.EscapeString(r.URL.Path) + "\n" +
			html.EscapeString(err.Error()) + `</pre>`))
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
