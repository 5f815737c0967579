package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// StoreKind selects the backing implementation for shared state.
type StoreKind string

const (
	// StoreMemory keeps state in-process (single instance, development).
	StoreMemory StoreKind = "memory"
	// StoreRedis keeps state in Redis (multiple instances).
	StoreRedis StoreKind = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreKind.
func (s *StoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "redis":
		*s = StoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid store kind: %q (valid options: memory, redis)", v)
	}
}

// SessionConfig describes the session marker written by the external login flow.
type SessionConfig struct {
	// MarkerCookie is the cookie whose presence marks a signed-in browser.
	MarkerCookie string `env:"SESSION_MARKER_COOKIE" envDefault:"user"`
}

// Sanitize restores the default marker name when blank.
func (s *SessionConfig) Sanitize() {
	s.MarkerCookie = strings.TrimSpace(s.MarkerCookie)
	if s.MarkerCookie == "" {
		s.MarkerCookie = "user"
	}
}

// FlashConfig controls one-shot toast storage between a POST and the following page load.
type FlashConfig struct {
	Store StoreKind     `env:"STORE" envDefault:"memory"`
	TTL   time.Duration `env:"TTL"   envDefault:"2m"`
}

// Sanitize applies defaults to flash configuration.
func (f *FlashConfig) Sanitize() {
	if f.Store == "" {
		f.Store = StoreMemory
	}
	if f.TTL <= 0 {
		f.TTL = 2 * time.Minute
	}
}

// LogoutConfig controls duplicate-submission guarding and rate limiting of logout.
type LogoutConfig struct {
	// Guard selects where in-flight logouts are tracked.
	Guard StoreKind `env:"GUARD" envDefault:"memory"`

	// GuardTTL bounds how long a pending logout blocks resubmission if the holder never releases.
	GuardTTL time.Duration `env:"GUARD_TTL" envDefault:"15s"`

	// RatePerMinute and Burst configure the per-client token bucket.
	RatePerMinute int `env:"RATE_PER_MINUTE" envDefault:"30"`
	Burst         int `env:"BURST"           envDefault:"5"`
}

// Sanitize applies defaults to logout configuration.
func (l *LogoutConfig) Sanitize() {
	if l.Guard == "" {
		l.Guard = StoreMemory
	}
	if l.GuardTTL <= 0 {
		l.GuardTTL = 15 * time.Second
	}
	if l.RatePerMinute < 1 {
		l.RatePerMinute = 1
	}
	if l.Burst < 1 {
		l.Burst = 1
	}
}

// Limit converts RatePerMinute into a token bucket rate.
func (l LogoutConfig) Limit() rate.Limit {
	return rate.Limit(float64(l.RatePerMinute) / 60.0)
}
