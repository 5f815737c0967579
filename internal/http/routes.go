package httpx

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	learnify "github.com/learnify/learnify-ui"
	"github.com/learnify/learnify-ui/internal/i18n"
	"github.com/learnify/learnify-ui/internal/ports"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Landing LandingPageService
	Flash   ports.FlashStore
	Catalog *i18n.Catalog
	Site    SiteOptions

	MarkerCookie string
	CookieDomain string
	FlashTTL     time.Duration

	// Optional: throttles POST /logout per client.
	LogoutLimiter *RateLimiter
	// Optional: Prometheus scrape handler mounted at MetricsPath.
	Metrics     http.Handler
	MetricsPath string
	// Optional: dependency probes for /healthz.
	Health *HealthHandler

	// Optional: overrides the template filesystem (tests).
	TemplateFS fs.FS

	IsDev  bool         // Development mode: templates and static files are read from disk
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the HTTP router with browser middleware.
// Recover and Logging are applied by the caller around the returned handler.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	health := services.Health
	if health == nil {
		health = &HealthHandler{}
	}
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	if services.Metrics != nil {
		path := services.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, services.Metrics)
	}

	mux.Handle("GET /static/", staticWithFallback(services.IsDev, logger))

	uiHandlers := setupUIHandlers(services, logger)
	if uiHandlers != nil {
		csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain, Logger: logger})
		registerUIRoutes(mux, uiHandlers, csrf, services.LogoutLimiter)
	}

	handler := &notFoundHandler{mux: mux, uiHandlers: uiHandlers}

	return Chain(handler,
		SecurityHeaders(),
		BrowserDetection(),
		Localize(services.Catalog),
		SessionContext(services.MarkerCookie),
	)
}

// registerUIRoutes mounts the browser routes. Only these issue and check CSRF tokens.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, csrf func(http.Handler) http.Handler, limiter *RateLimiter) {
	mux.Handle("GET /{$}", csrf(http.HandlerFunc(h.LandingPage)))

	var logout http.Handler = http.HandlerFunc(h.Logout)
	if limiter != nil {
		logout = limiter.Middleware()(logout)
	}
	mux.Handle("POST /logout", csrf(logout))
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode templates are loaded from disk so edits show up without a rebuild.
func setupUIHandlers(services RouterServices, logger *slog.Logger) *UIHandlers {
	if services.Landing == nil {
		logger.Error("landing service not configured; UI routes disabled")
		return nil
	}

	templateFS := services.TemplateFS
	if templateFS == nil {
		templateFS = resolveTemplateFS(services.IsDev, logger)
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		logger.Error("failed to create template renderer", slog.Any("error", err))
		return nil
	}

	return &UIHandlers{
		T:            tr,
		Landing:      services.Landing,
		Flash:        services.Flash,
		Catalog:      services.Catalog,
		Site:         services.Site,
		MarkerCookie: services.MarkerCookie,
		CookieDomain: services.CookieDomain,
		FlashTTL:     services.FlashTTL,
		IsDev:        services.IsDev,
		Logger:       logger,
	}
}

func resolveTemplateFS(isDev bool, logger *slog.Logger) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(learnify.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		logger.Warn("embedded templates unavailable; falling back to disk", slog.Any("error", err))
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticWithFallback serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticWithFallback(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}

	staticSub, err := fs.Sub(learnify.StaticFS, "frontend/static")
	if err != nil {
		logger.Warn("embedded static assets unavailable; falling back to disk", slog.Any("error", err))
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders disables caching in dev and allows a short public cache otherwise.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only routing misses are intercepted; matched handlers write straight through.
	if _, pattern := h.mux.Handler(r); pattern != "" {
		h.mux.ServeHTTP(w, r)
		return
	}

	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	if cw.status == http.StatusNotFound {
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	_, _ = w.Write(c.buf.Bytes())
}
