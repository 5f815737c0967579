// Package notify delivers transient user-facing toasts.
package notify

import (
	"context"
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/learnify/learnify-ui/internal/domain/landing"
)

// MaxMessageLen bounds a toast message in runes.
const MaxMessageLen = 280

// Notifier shows a toast to the user who made the current request.
type Notifier interface {
	Notify(ctx context.Context, kind landing.ToastKind, message string)
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, kind landing.ToastKind, message string)

// Notify implements Notifier.
func (f Func) Notify(ctx context.Context, kind landing.ToastKind, message string) {
	if f == nil {
		return
	}
	f(ctx, kind, message)
}

//nolint:gochecknoglobals // bluemonday policies are safe for concurrent use
var strict = bluemonday.StrictPolicy()

// Clean strips markup from server-provided text and bounds its length.
// The result is plain text; html/template escapes it again at render time.
func Clean(message string) string {
	s := html.UnescapeString(strict.Sanitize(message))
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > MaxMessageLen {
		r := []rune(s)
		s = string(r[:MaxMessageLen-1]) + "…"
	}
	return s
}

// Recorder collects toasts in memory. Handlers use one per request and
// deliver what it captured once the action finishes.
type Recorder struct {
	mu     sync.Mutex
	toasts []landing.Toast
}

// Notify implements Notifier. Blank messages and unknown kinds are dropped.
func (r *Recorder) Notify(_ context.Context, kind landing.ToastKind, message string) {
	msg := Clean(message)
	if msg == "" || !kind.Valid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, landing.Toast{Kind: kind, Message: msg})
}

// Toasts returns a copy of the recorded toasts in order.
func (r *Recorder) Toasts() []landing.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]landing.Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

var (
	_ Notifier = (*Recorder)(nil)
	_ Notifier = Func(nil)
)
