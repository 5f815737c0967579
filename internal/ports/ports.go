// Package ports defines the interfaces the landing service depends on.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"

	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
)

// Credentials are the ambient browser cookies forwarded to the backend.
type Credentials struct {
	Cookies []*http.Cookie
}

// Fingerprint identifies a credential set without exposing its values.
// Two requests carrying the same cookies share a fingerprint regardless of order.
func (c Credentials) Fingerprint() string {
	pairs := make([]string, 0, len(c.Cookies))
	for _, ck := range c.Cookies {
		if ck == nil {
			continue
		}
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	sort.Strings(pairs)

	h := sha256.New()
	for _, p := range pairs {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CourseCatalog lists the courses offered by the marketplace.
type CourseCatalog interface {
	ListCourses(ctx context.Context, creds Credentials) ([]course.Course, error)
}

// LogoutReply is the backend's answer to a successful logout.
type LogoutReply struct {
	Message string
	// Cookies are Set-Cookie headers to relay to the browser.
	Cookies []*http.Cookie
}

// AuthGateway ends the backend session.
type AuthGateway interface {
	Logout(ctx context.Context, creds Credentials) (LogoutReply, error)
}

// Backend is the full marketplace API surface used by this service.
type Backend interface {
	CourseCatalog
	AuthGateway
}

// FlashStore holds toasts between a form post and the next page render.
type FlashStore interface {
	Push(ctx context.Context, id string, toast landing.Toast) error
	// Pop returns and removes all toasts for id. Unknown ids yield an empty slice.
	Pop(ctx context.Context, id string) ([]landing.Toast, error)
}

// LogoutGuard keeps at most one logout per session in flight.
type LogoutGuard interface {
	// TryAcquire returns ok=false when key is already held.
	TryAcquire(ctx context.Context, key string) (token string, ok bool, err error)
	// Release frees key only if it is still held by token.
	Release(ctx context.Context, key, token string) error
}
