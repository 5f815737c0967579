package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/learnify/learnify-ui/internal/ports"
)

// cookieParams groups the attributes shared by cookies this service writes.
type cookieParams struct {
	Name     string
	Value    string
	Domain   string
	MaxAge   int
	HTTPOnly bool
}

// isSecureRequest reports whether the browser reached us over HTTPS, accounting for proxies.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || isForwardedHTTPS(r)
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	xfProto := r.Header.Get("X-Forwarded-Proto")
	if xfProto == "" {
		return false
	}
	for _, proto := range strings.Split(xfProto, ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

func setCookie(w http.ResponseWriter, r *http.Request, p cookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    p.Value,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: p.HTTPOnly,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   p.MaxAge,
	})
}

// clearCookie expires a cookie. Path and Domain must match the ones it was written with.
func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// credentialsFromRequest collects the ambient cookies forwarded to the backend.
// Cookies owned by this service are never forwarded.
func credentialsFromRequest(r *http.Request, csrfCookie string) ports.Credentials {
	all := r.Cookies()
	out := make([]*http.Cookie, 0, len(all))
	for _, c := range all {
		if c.Name == csrfCookie || c.Name == FlashCookieName {
			continue
		}
		out = append(out, c)
	}
	return ports.Credentials{Cookies: out}
}

// relayCookies forwards backend Set-Cookie values to the browser.
// Domain is dropped so the browser scopes them to this host; markerCookie is skipped
// because the caller clears it explicitly.
func relayCookies(w http.ResponseWriter, cookies []*http.Cookie, markerCookie string) {
	for _, c := range cookies {
		if c == nil || c.Name == "" || c.Name == markerCookie {
			continue
		}
		cp := *c
		cp.Domain = ""
		if cp.Path == "" {
			cp.Path = "/"
		}
		http.SetCookie(w, &cp)
	}
}
