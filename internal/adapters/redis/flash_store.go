// Package redis provides Redis-backed adapters for the landing service.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/ports"
)

var _ ports.FlashStore = (*FlashStore)(nil)

// FlashStore keeps pending toasts in a Redis list per flash id.
// Keys expire after ttl so abandoned flashes don't accumulate.
type FlashStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// FlashStoreOptions groups FlashStore settings.
type FlashStoreOptions struct {
	Prefix string
	TTL    time.Duration
}

// NewFlashStore creates a Redis flash store.
func NewFlashStore(client redis.UniversalClient, opts FlashStoreOptions) *FlashStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &FlashStore{client: client, prefix: opts.Prefix + "flash:", ttl: ttl}
}

func (s *FlashStore) Push(ctx context.Context, id string, toast landing.Toast) error {
	if id == "" {
		return errors.New("flash id cannot be empty")
	}

	data, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}

	key := s.prefix + id
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis push flash: %w", err)
	}
	return nil
}

// Pop reads and deletes the list atomically so a toast is shown at most once.
func (s *FlashStore) Pop(ctx context.Context, id string) ([]landing.Toast, error) {
	if id == "" {
		return []landing.Toast{}, nil
	}

	key := s.prefix + id
	pipe := s.client.TxPipeline()
	rng := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis pop flash: %w", err)
	}

	raw := rng.Val()
	out := make([]landing.Toast, 0, len(raw))
	for _, item := range raw {
		var t landing.Toast
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("unmarshal toast: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}
