package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type guardEntry struct {
	token     string
	expiresAt time.Time
}

// LogoutGuard holds per-key leases in process memory. It only protects a
// single instance; use the Redis guard when running more than one.
type LogoutGuard struct {
	mu     sync.Mutex
	leases map[string]guardEntry
	ttl    time.Duration
	now    func() time.Time
}

// NewLogoutGuard creates an in-memory guard whose leases lapse after ttl.
func NewLogoutGuard(ttl time.Duration) *LogoutGuard {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &LogoutGuard{leases: map[string]guardEntry{}, ttl: ttl, now: time.Now}
}

func (g *LogoutGuard) TryAcquire(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("guard key cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if cur, ok := g.leases[key]; ok && now.Before(cur.expiresAt) {
		return "", false, nil
	}
	token := uuid.NewString()
	g.leases[key] = guardEntry{token: token, expiresAt: now.Add(g.ttl)}
	return token, true, nil
}

func (g *LogoutGuard) Release(_ context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cur, ok := g.leases[key]; ok && cur.token == token {
		delete(g.leases, key)
	}
	return nil
}
