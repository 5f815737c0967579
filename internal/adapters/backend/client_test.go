package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/ports"
	"github.com/learnify/learnify-ui/internal/testutil"
)

func newTestClient(t *testing.T, fb *testutil.FakeBackend) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: fb.BaseURL(), Timeout: 2 * time.Second, MaxResponseBytes: 4096})
	require.NoError(t, err)
	return c
}

func userCreds() ports.Credentials {
	return ports.Credentials{Cookies: []*http.Cookie{{Name: "user", Value: "tok123"}, {Name: "jwt", Value: "abc"}}}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)

	_, err = NewClient(Config{BaseURL: "ftp://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")

	c, err := NewClient(Config{BaseURL: "http://example.com/api/v1/"})
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.hc.Timeout)
	assert.Equal(t, int64(defaultMaxResponseBytes), c.maxBytes)
}

func TestListCourses_Success(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.JSON(coursesPath, http.StatusOK, `{"courses":[
		{"_id":"a1","title":"Go Basics","image":{"url":"https://cdn/a1.png"}},
		{"_id":"b2","title":"Rust","image":{"url":"https://cdn/b2.png"}},
		{"_id":"c3","title":"No Image"}
	]}`)

	got, err := newTestClient(t, fb).ListCourses(context.Background(), userCreds())
	require.NoError(t, err)

	assert.Equal(t, []course.Course{
		{ID: "a1", Title: "Go Basics", ImageURL: "https://cdn/a1.png"},
		{ID: "b2", Title: "Rust", ImageURL: "https://cdn/b2.png"},
		{ID: "c3", Title: "No Image"},
	}, got)
	assert.Equal(t, int64(1), fb.Hits(coursesPath))

	seen := map[string]string{}
	for _, ck := range fb.CookiesSeen(coursesPath) {
		seen[ck.Name] = ck.Value
	}
	assert.Equal(t, map[string]string{"user": "tok123", "jwt": "abc"}, seen)
}

func TestListCourses_EmptyList(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.JSON(coursesPath, http.StatusOK, `{"courses":[]}`)

	got, err := newTestClient(t, fb).ListCourses(context.Background(), ports.Credentials{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCourses_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"errors":"boom"}`, wantStatus: 500, wantMsg: "unexpected status"},
		{name: "malformed json", status: http.StatusOK, body: `{"courses":[`, wantStatus: 200, wantMsg: "decode courses"},
		{name: "missing courses field", status: http.StatusOK, body: `{"items":[]}`, wantStatus: 200, wantMsg: "no courses field"},
		{name: "oversized body", status: http.StatusOK, body: `{"courses":[],"pad":"` + strings.Repeat("x", 5000) + `"}`, wantStatus: 200, wantMsg: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := testutil.NewFakeBackend(t)
			fb.JSON(coursesPath, tt.status, tt.body)

			got, err := newTestClient(t, fb).ListCourses(context.Background(), ports.Credentials{})
			require.Error(t, err)
			assert.Nil(t, got)

			var fe *landing.FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantStatus, fe.StatusCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestListCourses_TransportError(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	c := newTestClient(t, fb)
	fb.Server.Close()

	_, err := c.ListCourses(context.Background(), ports.Credentials{})
	var fe *landing.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
}

func TestListCourses_ContextCanceled(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Handle(coursesPath, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, fb).ListCourses(ctx, ports.Credentials{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLogout_Success(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Handle(logoutPath, func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "", Path: "/", MaxAge: -1})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Bye"}`))
	})

	reply, err := newTestClient(t, fb).Logout(context.Background(), userCreds())
	require.NoError(t, err)
	assert.Equal(t, "Bye", reply.Message)
	require.Len(t, reply.Cookies, 1)
	assert.Equal(t, "jwt", reply.Cookies[0].Name)
	assert.Equal(t, int64(1), fb.Hits(logoutPath))
	assert.NotEmpty(t, fb.CookiesSeen(logoutPath))
}

func TestLogout_SuccessWithoutBody(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Handle(logoutPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	reply, err := newTestClient(t, fb).Logout(context.Background(), userCreds())
	require.NoError(t, err)
	assert.Empty(t, reply.Message)
}

func TestLogout_Failures(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantText  string
		wantShown string
	}{
		{name: "server text", body: `{"errors":"Session expired"}`, wantText: "Session expired", wantShown: "Session expired"},
		{name: "no errors field", body: `{}`, wantText: "", wantShown: "Error in logging out"},
		{name: "non-string errors", body: `{"errors":{"code":1}}`, wantText: "", wantShown: "Error in logging out"},
		{name: "not json", body: `<html>bad gateway</html>`, wantText: "", wantShown: "Error in logging out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := testutil.NewFakeBackend(t)
			fb.JSON(logoutPath, http.StatusUnauthorized, tt.body)

			_, err := newTestClient(t, fb).Logout(context.Background(), userCreds())
			var le *landing.LogoutError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, http.StatusUnauthorized, le.StatusCode)
			assert.Equal(t, tt.wantText, le.ServerMessage)
			assert.Equal(t, tt.wantShown, le.UserMessage("Error in logging out"))
		})
	}
}

func TestLogout_TransportError(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	c := newTestClient(t, fb)
	fb.Server.Close()

	_, err := c.Logout(context.Background(), userCreds())
	var le *landing.LogoutError
	require.True(t, errors.As(err, &le))
	assert.Zero(t, le.StatusCode)
	assert.Empty(t, le.ServerMessage)
}
