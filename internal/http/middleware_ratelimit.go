package httpx

import (
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/i18n"
)

const defaultLimiterCleanup = 5 * time.Minute

var errRateLimited = errors.New("too many requests, please try again later")

// RateLimiterConfig configures the per-client token bucket.
type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration // idle entries are dropped after twice this
	// TrustForwardedFor keys clients by the first X-Forwarded-For hop.
	// Enable only behind a proxy that overwrites the header.
	TrustForwardedFor bool
	Logger            *slog.Logger
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client address.
type RateLimiter struct {
	cfg RateLimiterConfig

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter creates a RateLimiter and starts its background cleanup. Call Stop to end it.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaultLimiterCleanup
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	rl := &RateLimiter{
		cfg:      cfg,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware rejects requests beyond the configured rate with 429.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.clientKey(r)
			if !rl.limiterFor(key).Allow() {
				rl.cfg.Logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("client", key),
					slog.String("path", r.URL.Path),
				)
				rl.reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LimiterCount reports how many clients are currently tracked.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.RLock()
	cl, ok := rl.limiters[key]
	rl.mu.RUnlock()

	if ok {
		rl.mu.Lock()
		cl.lastAccess = time.Now()
		rl.mu.Unlock()
		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// double-checked
	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	l := rate.NewLimiter(rl.cfg.Rate, rl.cfg.Burst)
	rl.limiters[key] = &clientLimiter{limiter: l, lastAccess: time.Now()}
	return l
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.cfg.TrustForwardedFor {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cfg.CleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// reject writes 429 with Retry-After set to the seconds until one token refills.
// htmx callers also get an info toast.
func (rl *RateLimiter) reject(w http.ResponseWriter, r *http.Request) {
	retryAfter := 1
	if rl.cfg.Rate > 0 {
		retryAfter = max(1, int(math.Ceil(1.0/float64(rl.cfg.Rate))))
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

	if IsHTMX(r) {
		msg := translate(r, i18n.MsgTooManyRequests, "Too many attempts. Please wait a moment.")
		triggerToast(w, landing.Toast{Kind: landing.ToastInfo, Message: msg})
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}
	WriteError(w, ErrorParams{Code: http.StatusTooManyRequests, ErrCode: "rate_limit_exceeded", Err: errRateLimited})
}
