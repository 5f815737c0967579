package httpx

import (
	"context"
	"net/http"

	"github.com/learnify/learnify-ui/internal/domain/session"
	"github.com/learnify/learnify-ui/internal/i18n"
)

// Unexported context key types avoid collisions across packages.
type (
	sessionKey   struct{}
	localizerKey struct{}
	requestIDKey struct{}
)

// SetSessionInContext returns a child context that carries the detected session.
func SetSessionInContext(ctx context.Context, s session.Context) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by SessionContext and whether one was present.
// A missing value yields the unauthenticated zero Context.
func SessionFromContext(ctx context.Context) (session.Context, bool) {
	s, ok := ctx.Value(sessionKey{}).(session.Context)
	return s, ok
}

// SetLocalizerInContext returns a child context that carries the request localizer.
// If l is nil, the original ctx is returned unchanged.
func SetLocalizerInContext(ctx context.Context, l *i18n.Localizer) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, localizerKey{}, l)
}

// LocalizerFromContext returns the request localizer, or nil when Localize did not run.
func LocalizerFromContext(ctx context.Context) *i18n.Localizer {
	if l, ok := ctx.Value(localizerKey{}).(*i18n.Localizer); ok {
		return l
	}
	return nil
}

// translate localizes id for the request, using fallback when no localizer is attached.
func translate(r *http.Request, id, fallback string) string {
	l := LocalizerFromContext(r.Context())
	if l == nil {
		return fallback
	}
	return l.T(id)
}

func setRequestIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id assigned by Logging, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
