package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
)

// FakeBackend is a scripted stand-in for the course marketplace API.
// Handlers are keyed by path relative to the API base (e.g. "/course/courses").
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     map[string]*atomic.Int64
	cookies  map[string][]*http.Cookie
}

// NewFakeBackend starts a server mounted at /api/v1 and stops it on cleanup.
func NewFakeBackend(t TestingTB) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		handlers: map[string]http.HandlerFunc{},
		hits:     map[string]*atomic.Int64{},
		cookies:  map[string][]*http.Cookie{},
	}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

// BaseURL is the value to use for BACKEND_URL.
func (fb *FakeBackend) BaseURL() string { return fb.Server.URL + "/api/v1" }

// Handle registers a handler for a backend path.
func (fb *FakeBackend) Handle(path string, h http.HandlerFunc) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.handlers[path] = h
	if _, ok := fb.hits[path]; !ok {
		fb.hits[path] = &atomic.Int64{}
	}
}

// JSON registers a handler that replies with a fixed status and body.
func (fb *FakeBackend) JSON(path string, status int, body string) {
	fb.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Hits returns how many requests reached path.
func (fb *FakeBackend) Hits(path string) int64 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if c, ok := fb.hits[path]; ok {
		return c.Load()
	}
	return 0
}

// CookiesSeen returns the cookies carried by the last request to path.
func (fb *FakeBackend) CookiesSeen(path string) []*http.Cookie {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.cookies[path]
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1"
	path := r.URL.Path
	if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
		path = path[len(prefix):]
	}

	fb.mu.Lock()
	h, ok := fb.handlers[path]
	if ok {
		fb.hits[path].Add(1)
		fb.cookies[path] = r.Cookies()
	}
	fb.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}
