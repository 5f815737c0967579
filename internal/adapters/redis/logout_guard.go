package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/learnify/learnify-ui/internal/ports"
)

var _ ports.LogoutGuard = (*LogoutGuard)(nil)

// releaseScript deletes the key only when it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LogoutGuard is a SET NX PX lock shared by all instances behind a load balancer.
// The ttl bounds how long a crashed holder can block a retry.
type LogoutGuard struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewLogoutGuard creates a Redis-backed logout guard.
func NewLogoutGuard(client redis.UniversalClient, prefix string, ttl time.Duration) *LogoutGuard {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &LogoutGuard{client: client, prefix: prefix + "logout:", ttl: ttl}
}

func (g *LogoutGuard) TryAcquire(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("guard key cannot be empty")
	}

	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.prefix+key, token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis acquire logout guard: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (g *LogoutGuard) Release(ctx context.Context, key, token string) error {
	if key == "" || token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, g.client, []string{g.prefix + key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release logout guard: %w", err)
	}
	return nil
}
