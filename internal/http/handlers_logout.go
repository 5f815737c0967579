package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/domain/session"
	"github.com/learnify/learnify-ui/internal/http/ui/viewmodel"
	"github.com/learnify/learnify-ui/internal/i18n"
	"github.com/learnify/learnify-ui/internal/notify"
	obserrors "github.com/learnify/learnify-ui/internal/observability/errors"
	"github.com/learnify/learnify-ui/internal/service"
)

// Logout ends the backend session for the signed-in browser.
//
// htmx callers get the re-rendered navbar plus a showToast trigger. Plain form
// posts are redirected to / and see the toast on that page load.
// On success the marker cookie is expired and backend Set-Cookie values are relayed;
// on failure both are left untouched so the user can retry.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := SessionFromContext(ctx)

	rec := &notify.Recorder{}
	res, err := h.Landing.Logout(ctx, service.LogoutInput{
		Session:     sess,
		Credentials: credentialsFromRequest(r, h.csrfCookie()),
		Messages: service.LogoutMessages{
			Failed:  h.text(r, i18n.MsgLogoutFailed, ""),
			Success: h.text(r, i18n.MsgLogoutSuccess, ""),
			Pending: h.text(r, i18n.MsgLogoutPending, ""),
		},
	}, rec)

	if err == nil {
		clearCookie(w, r, h.markerCookie(), h.CookieDomain)
		relayCookies(w, res.RelayCookies, h.markerCookie())
	} else if !errors.Is(err, service.ErrNotAuthenticated) && !errors.Is(err, landing.ErrLogoutPending) {
		h.logger().InfoContext(ctx, "logout not completed",
			slog.String("request_id", RequestIDFromContext(ctx)),
			slog.String("error_class", obserrors.Classify(err)),
		)
	}

	toasts := rec.Toasts()
	if !IsHTMX(r) {
		h.stashFlash(w, r, toasts)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	triggerToasts(w, toasts)
	h.renderNavbar(w, r, res.Session)
}

// renderNavbar swaps the navbar to the variant for s.
// Status stays 200 so htmx performs the swap on every outcome.
func (h *UIHandlers) renderNavbar(w http.ResponseWriter, r *http.Request, s session.Context) {
	layout := h.buildLayout(r, PageMeta{CurrentPage: PageLanding})
	vm := viewmodel.BuildLanding(viewmodel.LandingInput{
		Layout: layout,
		State:  landing.State{Session: s},
		Labels: h.translator(r),
	})
	if err := h.T.renderTemplate(w, "navbar", &vm); err != nil {
		h.logAndRenderTemplateError(w, r, err, "navbar render")
	}
}
