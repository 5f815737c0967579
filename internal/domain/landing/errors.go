// Package landing contains the failure kinds of the landing page and the
// state handed to the renderer.
package landing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLogoutPending is returned when a logout for the same session is already in flight.
var ErrLogoutPending = errors.New("logout already in progress")

// FetchError reports that the course list could not be loaded.
// StatusCode is zero for transport and decode failures.
type FetchError struct {
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch courses: backend status %d: %v", e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("fetch courses: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// LogoutError reports a failed logout call. ServerMessage carries the backend's
// "errors" text when one was provided.
type LogoutError struct {
	StatusCode    int
	ServerMessage string
	Cause         error
}

func (e *LogoutError) Error() string {
	var b strings.Builder
	b.WriteString("logout")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": backend status %d", e.StatusCode)
	}
	if e.ServerMessage != "" {
		fmt.Fprintf(&b, ": %s", e.ServerMessage)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *LogoutError) Unwrap() error { return e.Cause }

// UserMessage returns the server text when present, otherwise fallback.
func (e *LogoutError) UserMessage(fallback string) string {
	if e == nil || strings.TrimSpace(e.ServerMessage) == "" {
		return fallback
	}
	return e.ServerMessage
}
