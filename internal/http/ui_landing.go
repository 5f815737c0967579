package httpx

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/http/ui/viewmodel"
)

// LandingPage renders the marketing page: navbar variant, hero, course carousel and footer.
// Course fetch failures degrade to an empty carousel; this handler never fails on backend errors.
func (h *UIHandlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := SessionFromContext(ctx)
	creds := credentialsFromRequest(r, h.csrfCookie())

	// The flash pop and the course fetch are independent round trips.
	var (
		st     landing.State
		toasts []landing.Toast
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st = h.Landing.Load(gctx, sess, creds)
		return nil
	})
	g.Go(func() error {
		toasts = h.consumeFlash(w, r)
		return nil
	})
	_ = g.Wait() // neither task returns an error

	layout := h.buildLayout(r, PageMeta{CurrentPage: PageLanding})
	layout.Toasts = toasts
	if WantsPartial(r) {
		triggerToasts(w, layout.Toasts)
	}

	vm := viewmodel.BuildLanding(viewmodel.LandingInput{
		Layout:   layout,
		State:    st,
		Labels:   h.translator(r),
		VideoURL: h.Site.VideoURL,
		Year:     h.Site.CopyrightYear,
	})
	h.renderPage(w, r, &vm)
}

// consumeFlash pops toasts left by a previous form post and expires the flash cookie.
// Store errors are logged and treated as no toasts.
func (h *UIHandlers) consumeFlash(w http.ResponseWriter, r *http.Request) []landing.Toast {
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	clearCookie(w, r, FlashCookieName, h.CookieDomain)

	id, err := uuid.Parse(c.Value)
	if err != nil || h.Flash == nil {
		return nil
	}
	toasts, err := h.Flash.Pop(r.Context(), id.String())
	if err != nil {
		h.logger().WarnContext(r.Context(), "pop flash failed",
			slog.Any("error", err),
			slog.String("request_id", RequestIDFromContext(r.Context())),
		)
		return nil
	}
	return toasts
}

// stashFlash stores toasts for the next page load and points the browser at them.
func (h *UIHandlers) stashFlash(w http.ResponseWriter, r *http.Request, toasts []landing.Toast) {
	if len(toasts) == 0 || h.Flash == nil {
		return
	}
	id := uuid.NewString()
	for _, t := range toasts {
		if err := h.Flash.Push(r.Context(), id, t); err != nil {
			h.logger().WarnContext(r.Context(), "push flash failed",
				slog.Any("error", err),
				slog.String("request_id", RequestIDFromContext(r.Context())),
			)
			return
		}
	}
	setCookie(w, r, cookieParams{
		Name:     FlashCookieName,
		Value:    id,
		Domain:   h.CookieDomain,
		MaxAge:   int(h.FlashTTL.Seconds()),
		HTTPOnly: true,
	})
}
