package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/domain/session"
	"github.com/learnify/learnify-ui/internal/notify"
	obserrors "github.com/learnify/learnify-ui/internal/observability/errors"
	"github.com/learnify/learnify-ui/internal/observability/metrics"
	"github.com/learnify/learnify-ui/internal/ports"
)

// LandingObservability groups the optional instrumentation dependencies.
type LandingObservability struct {
	Logger  *slog.Logger
	Metrics metrics.Recorder
}

// LandingServiceOptions groups dependencies for LandingService.
type LandingServiceOptions struct {
	Backend       ports.Backend        // Required
	Guard         ports.LogoutGuard    // Required
	Observability LandingObservability // Optional
}

// LandingService builds the landing page state and performs logout.
type LandingService struct {
	backend ports.Backend
	guard   ports.LogoutGuard
	logger  *slog.Logger
	metrics metrics.Recorder
	flight  singleflight.Group
}

// NewLandingService constructs a LandingService.
func NewLandingService(opts LandingServiceOptions) *LandingService {
	if opts.Backend == nil {
		panic("Backend is required")
	}
	if opts.Guard == nil {
		panic("LogoutGuard is required")
	}

	logger := opts.Observability.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var rec metrics.Recorder = metrics.Nop{}
	if opts.Observability.Metrics != nil {
		rec = opts.Observability.Metrics
	}

	return &LandingService{
		backend: opts.Backend,
		guard:   opts.Guard,
		logger:  logger.With("component", "landing_service"),
		metrics: rec,
	}
}

// Load pairs the session detected for this request with a fresh course list.
// It never fails: a course fetch failure yields an empty list.
func (s *LandingService) Load(ctx context.Context, sess session.Context, creds ports.Credentials) landing.State {
	return landing.State{
		Session: sess,
		Courses: s.LoadCourses(ctx, creds),
	}
}

// LoadCourses performs one catalog fetch. Concurrent loads for the same
// credentials share a single backend call; results are never cached.
func (s *LandingService) LoadCourses(ctx context.Context, creds ports.Credentials) []course.Course {
	ch := s.flight.DoChan(creds.Fingerprint(), func() (any, error) {
		// Detached so one disconnecting browser doesn't fail the others sharing the call.
		// The backend client timeout still bounds it.
		fetchCtx := context.WithoutCancel(ctx)
		start := time.Now()
		list, err := s.backend.ListCourses(fetchCtx, creds)
		s.metrics.RecordCourseFetch(len(list), time.Since(start), err)
		return list, err
	})

	select {
	case <-ctx.Done():
		s.logFetchFailure(ctx, ctx.Err())
		return []course.Course{}
	case res := <-ch:
		if res.Shared {
			s.metrics.RecordCoalescedFetch()
		}
		if res.Err != nil {
			s.logFetchFailure(ctx, res.Err)
			return []course.Course{}
		}
		list, _ := res.Val.([]course.Course)
		return course.Clone(list)
	}
}

func (s *LandingService) logFetchFailure(ctx context.Context, err error) {
	attrs := []any{
		slog.Any("error", err),
		slog.String("error_class", obserrors.Classify(err)),
	}
	var fe *landing.FetchError
	if errors.As(err, &fe) && fe.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", fe.StatusCode))
	}
	s.logger.WarnContext(ctx, "fetch courses failed", attrs...)
}

// LogoutMessages are the localized texts used when the backend gives none.
type LogoutMessages struct {
	Failed  string
	Success string
	Pending string
}

// DefaultLogoutMessages returns the English fallbacks.
func DefaultLogoutMessages() LogoutMessages {
	return LogoutMessages{
		Failed:  "Error in logging out",
		Success: "Logged out successfully",
		Pending: "Logout is already in progress",
	}
}

func (m LogoutMessages) withDefaults() LogoutMessages {
	d := DefaultLogoutMessages()
	if m.Failed == "" {
		m.Failed = d.Failed
	}
	if m.Success == "" {
		m.Success = d.Success
	}
	if m.Pending == "" {
		m.Pending = d.Pending
	}
	return m
}

// LogoutInput groups the parameters of a logout action.
type LogoutInput struct {
	Session     session.Context
	Credentials ports.Credentials
	Messages    LogoutMessages
}

// LogoutResult is the outcome of a logout action.
type LogoutResult struct {
	// Session is LoggedOut() on success and unchanged otherwise.
	Session session.Context
	Message string
	// RelayCookies are backend Set-Cookie values to forward to the browser.
	RelayCookies []*http.Cookie
}

// ErrNotAuthenticated is returned when logout is requested without a session marker.
var ErrNotAuthenticated = errors.New("logout requires an authenticated session")

// Logout ends the backend session. Exactly one toast is sent through n for
// every attempt that reaches the guard.
func (s *LandingService) Logout(ctx context.Context, in LogoutInput, n notify.Notifier) (LogoutResult, error) {
	if n == nil {
		n = notify.Func(nil)
	}
	msgs := in.Messages.withDefaults()
	unchanged := LogoutResult{Session: in.Session}

	if in.Session.State() != session.StateAuthenticated {
		return unchanged, ErrNotAuthenticated
	}

	key := guardKey(in.Session.Marker)
	token, ok, err := s.guard.TryAcquire(ctx, key)
	switch {
	case err != nil:
		// A broken guard store must not block logout; proceed unguarded.
		s.logger.WarnContext(ctx, "logout guard unavailable", slog.Any("error", err))
	case !ok:
		s.metrics.RecordLogout(0, landing.ErrLogoutPending)
		n.Notify(ctx, landing.ToastInfo, msgs.Pending)
		return unchanged, landing.ErrLogoutPending
	default:
		defer s.release(ctx, key, token)
	}

	start := time.Now()
	reply, err := s.backend.Logout(ctx, in.Credentials)
	s.metrics.RecordLogout(time.Since(start), err)
	if err != nil {
		s.logger.ErrorContext(ctx, "logout failed",
			slog.Any("error", err),
			slog.String("error_class", obserrors.Classify(err)),
		)
		n.Notify(ctx, landing.ToastError, toastText(logoutFailureText(err, ""), msgs.Failed))
		return unchanged, fmt.Errorf("logout: %w", err)
	}

	msg := toastText(reply.Message, msgs.Success)
	n.Notify(ctx, landing.ToastSuccess, msg)

	return LogoutResult{
		Session:      in.Session.LoggedOut(),
		Message:      msg,
		RelayCookies: reply.Cookies,
	}, nil
}

func (s *LandingService) release(ctx context.Context, key, token string) {
	if err := s.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
		s.logger.WarnContext(ctx, "release logout guard failed", slog.Any("error", err))
	}
}

func logoutFailureText(err error, fallback string) string {
	var le *landing.LogoutError
	if errors.As(err, &le) {
		return le.UserMessage(fallback)
	}
	return fallback
}

// toastText cleans server text and uses fallback when nothing readable remains.
func toastText(text, fallback string) string {
	if s := notify.Clean(text); s != "" {
		return s
	}
	return fallback
}

// guardKey hashes the marker so raw session values never reach the guard store.
func guardKey(marker string) string {
	sum := sha256.Sum256([]byte(marker))
	return hex.EncodeToString(sum[:])
}
