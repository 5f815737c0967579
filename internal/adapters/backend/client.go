// Package backend talks to the course marketplace REST API on behalf of a browser.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/ports"
)

const (
	coursesPath = "/course/courses"
	logoutPath  = "/user/logout"

	defaultTimeout          = 10 * time.Second
	defaultMaxResponseBytes = 1 << 20
)

var _ ports.Backend = (*Client)(nil)

// Config captures the backend client settings. Callers should pass a validated config.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MaxResponseBytes int64
	// HTTPClient is optional; its Jar is replaced per call.
	HTTPClient *http.Client
}

// Client is a ports.Backend over HTTP. It is safe for concurrent use:
// every call gets its own cookie jar seeded with that browser's credentials.
type Client struct {
	base     *url.URL
	hc       *http.Client
	maxBytes int64
}

// NewClient builds a backend client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url %q: scheme must be http or https", raw)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxResponseBytes
	}

	hc := &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		cp := *cfg.HTTPClient
		if cp.Timeout <= 0 {
			cp.Timeout = timeout
		}
		hc = &cp
	}

	return &Client{base: base, hc: hc, maxBytes: maxBytes}, nil
}

type courseDTO struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Image *struct {
		URL string `json:"url"`
	} `json:"image"`
}

type coursesResponse struct {
	Courses *[]courseDTO `json:"courses"`
}

// ListCourses fetches the catalog. Server order is preserved.
func (c *Client) ListCourses(ctx context.Context, creds ports.Credentials) ([]course.Course, error) {
	resp, err := c.get(ctx, coursesPath, creds)
	if err != nil {
		return nil, &landing.FetchError{Cause: err}
	}

	body, err := c.readBody(resp)
	if err != nil {
		return nil, &landing.FetchError{StatusCode: resp.StatusCode, Cause: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &landing.FetchError{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload coursesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &landing.FetchError{StatusCode: resp.StatusCode, Cause: fmt.Errorf("decode courses: %w", err)}
	}
	if payload.Courses == nil {
		return nil, &landing.FetchError{StatusCode: resp.StatusCode, Cause: errors.New("response has no courses field")}
	}

	out := make([]course.Course, 0, len(*payload.Courses))
	for _, dto := range *payload.Courses {
		item := course.Course{ID: dto.ID, Title: dto.Title}
		if dto.Image != nil {
			item.ImageURL = dto.Image.URL
		}
		out = append(out, item)
	}
	return out, nil
}

type logoutSuccess struct {
	Message string `json:"message"`
}

type logoutFailure struct {
	Errors any `json:"errors"`
}

// Logout ends the backend session. Set-Cookie headers from the backend are
// returned so the caller can relay them to the browser.
func (c *Client) Logout(ctx context.Context, creds ports.Credentials) (ports.LogoutReply, error) {
	resp, err := c.get(ctx, logoutPath, creds)
	if err != nil {
		return ports.LogoutReply{}, &landing.LogoutError{Cause: err}
	}

	body, readErr := c.readBody(resp)
	if !isSuccess(resp.StatusCode) {
		lerr := &landing.LogoutError{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %s", resp.Status),
		}
		if readErr == nil {
			lerr.ServerMessage = failureText(body)
		}
		return ports.LogoutReply{}, lerr
	}
	if readErr != nil {
		return ports.LogoutReply{}, &landing.LogoutError{StatusCode: resp.StatusCode, Cause: readErr}
	}

	reply := ports.LogoutReply{Cookies: resp.Cookies()}
	var ok logoutSuccess
	if len(body) > 0 && json.Unmarshal(body, &ok) == nil {
		reply.Message = strings.TrimSpace(ok.Message)
	}
	return reply, nil
}

// failureText extracts the "errors" text; any other shape yields "".
func failureText(body []byte) string {
	var f logoutFailure
	if err := json.Unmarshal(body, &f); err != nil {
		return ""
	}
	s, ok := f.Errors.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func (c *Client) get(ctx context.Context, path string, creds ports.Credentials) (*http.Response, error) {
	u := c.base.JoinPath(path)

	jar, err := newJar(u, creds)
	if err != nil {
		return nil, err
	}
	hc := *c.hc
	hc.Jar = jar

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request %s: %w", path, err)
	}
	return resp, nil
}

// newJar scopes the browser's cookies to the backend host only.
func newJar(u *url.URL, creds ports.Credentials) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if len(creds.Cookies) == 0 {
		return jar, nil
	}
	scoped := make([]*http.Cookie, 0, len(creds.Cookies))
	for _, ck := range creds.Cookies {
		if ck == nil || ck.Name == "" {
			continue
		}
		scoped = append(scoped, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: "/"})
	}
	jar.SetCookies(u, scoped)
	return jar, nil
}

func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	closeErr := resp.Body.Close()
	if err != nil {
		if closeErr != nil {
			return nil, errors.Join(
				fmt.Errorf("read backend response: %w", err),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return nil, fmt.Errorf("read backend response: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("backend response exceeds %d bytes", c.maxBytes)
	}
	return body, nil
}

func isSuccess(code int) bool { return code >= 200 && code < 300 }
