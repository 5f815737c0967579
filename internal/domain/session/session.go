// Package session models the signed-in state of a browser as seen by the landing page.
// The marker itself is opaque: only its presence is meaningful.
package session

import "strings"

// State is the two-state authentication machine of the landing page.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Context is the explicit session value handed to views.
// It is derived once per page load and never re-synchronised afterwards.
type Context struct {
	Marker        string
	Authenticated bool
}

// Detect derives the session context from a persisted marker value.
// A marker is considered present only when it contains non-whitespace characters.
func Detect(marker string) Context {
	if strings.TrimSpace(marker) == "" {
		return Context{}
	}
	return Context{Marker: marker, Authenticated: true}
}

// State reports the machine state for this context.
func (c Context) State() State {
	if c.Authenticated && c.Marker != "" {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

// LoggedOut is the only transition out of StateAuthenticated.
func (c Context) LoggedOut() Context {
	return Context{}
}
