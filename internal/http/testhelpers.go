package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/learnify/learnify-ui/internal/adapters/backend"
	"github.com/learnify/learnify-ui/internal/adapters/memory"
	"github.com/learnify/learnify-ui/internal/i18n"
	"github.com/learnify/learnify-ui/internal/service"
	"github.com/learnify/learnify-ui/internal/testutil"
)

// testCSRFToken is sent as both cookie and header so state-changing test requests pass CSRF.
const testCSRFToken = "test-csrf-token"

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// SkipIfNoTemplates checks if templates are available and skips the test if not.
func SkipIfNoTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// testSite is the page content used across handler tests.
func testSite() SiteOptions {
	return SiteOptions{Brand: "Learnify", VideoURL: "https://videos.example.com", CopyrightYear: 2025}
}

// uiTestEnv wires the router to a real LandingService backed by a scripted backend.
type uiTestEnv struct {
	Backend *testutil.FakeBackend
	Flash   *memory.FlashStore
	Handler http.Handler
}

// newUITestEnv builds the full browser router. mutate may adjust the services before
// the router is built.
func newUITestEnv(t *testing.T, mutate ...func(*RouterServices)) *uiTestEnv {
	t.Helper()
	SkipIfNoTemplates(t)

	fb := testutil.NewFakeBackend(t)
	client, err := backend.NewClient(backend.Config{BaseURL: fb.BaseURL(), Timeout: 2 * time.Second})
	require.NoError(t, err)

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	landingSvc := service.NewLandingService(service.LandingServiceOptions{
		Backend: client,
		Guard:   memory.NewLogoutGuard(10 * time.Second),
	})
	flash := memory.NewFlashStore(time.Minute)

	services := RouterServices{
		Landing:      landingSvc,
		Flash:        flash,
		Catalog:      catalog,
		Site:         testSite(),
		MarkerCookie: DefaultMarkerCookie,
		FlashTTL:     time.Minute,
		TemplateFS:   os.DirFS(TemplatePathFromTest),
	}
	for _, m := range mutate {
		m(&services)
	}

	return &uiTestEnv{Backend: fb, Flash: flash, Handler: NewRouter(services)}
}

// coursesJSON is a catalog reply with three courses in a fixed order.
const coursesJSON = `{"courses":[
	{"_id":"c1","title":"Go Basics","image":{"url":"https://cdn.example.com/c1.png"}},
	{"_id":"c2","title":"Advanced SQL","image":{"url":"https://cdn.example.com/c2.png"}},
	{"_id":"c3","title":"Intro to Docker"}
]}`

// pageRequest builds a browser GET for path carrying cookies.
func pageRequest(path string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// logoutRequest builds a POST /logout with a valid CSRF pair.
func logoutRequest(htmx bool, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Accept", "text/html")
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	if htmx {
		req.Header.Set("Hx-Request", "true")
	}
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func markerCookie(value string) *http.Cookie {
	return &http.Cookie{Name: DefaultMarkerCookie, Value: value}
}

// serve runs req through h and returns the response and its body.
func serve(t *testing.T, h http.Handler, req *http.Request) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// findCookie returns the Set-Cookie named name, or nil.
func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
