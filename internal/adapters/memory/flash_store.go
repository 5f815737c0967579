// Package memory provides single-instance adapters for local development and tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/ports"
)

var (
	_ ports.FlashStore  = (*FlashStore)(nil)
	_ ports.LogoutGuard = (*LogoutGuard)(nil)
)

type flashEntry struct {
	toasts    []landing.Toast
	expiresAt time.Time
}

// FlashStore is a mutex-protected map of pending toasts with lazy expiry.
type FlashStore struct {
	mu      sync.Mutex
	entries map[string]*flashEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewFlashStore creates an in-memory flash store.
func NewFlashStore(ttl time.Duration) *FlashStore {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &FlashStore{entries: map[string]*flashEntry{}, ttl: ttl, now: time.Now}
}

func (s *FlashStore) Push(_ context.Context, id string, toast landing.Toast) error {
	if id == "" {
		return errors.New("flash id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	e, ok := s.entries[id]
	if !ok {
		e = &flashEntry{}
		s.entries[id] = e
	}
	e.toasts = append(e.toasts, toast)
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *FlashStore) Pop(_ context.Context, id string) ([]landing.Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	delete(s.entries, id)
	if !ok || s.now().After(e.expiresAt) {
		return []landing.Toast{}, nil
	}
	return e.toasts, nil
}

// Len reports the number of live flash ids.
func (s *FlashStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *FlashStore) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
