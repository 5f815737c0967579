package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/learnify/learnify-ui/internal/domain/landing"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsHistoryRestore reports true when htmx is restoring history (Hx-History-Restore-Request: true).
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// WantsPartial returns true when the handler should return only the content fragment.
// History restores replace the whole body, so they get the full layout.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// SetHXTrigger sets the Hx-Trigger response header as a JSON object {"<event>": <payload>}.
// If payload is nil, the value true is used for the event.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}
	b, err := json.Marshal(map[string]any{event: value})
	if err != nil {
		w.Header().Set("Hx-Trigger", "{\""+event+"\":true}")
		return
	}
	w.Header().Set("Hx-Trigger", string(b))
}

// HTMXResponse provides a fluent API for building htmx responses.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Trigger triggers a client-side event after swap with optional payload. Chainable.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// triggerToast sends a single toast through the showToast client event.
func triggerToast(w http.ResponseWriter, t landing.Toast) {
	if w == nil || strings.TrimSpace(t.Message) == "" {
		return
	}
	HTMX(w).Trigger(ToastEvent, t)
}

// triggerToasts sends every toast in one header. One toast is sent as an object,
// several as an array; the client script accepts both.
func triggerToasts(w http.ResponseWriter, toasts []landing.Toast) {
	switch len(toasts) {
	case 0:
		return
	case 1:
		triggerToast(w, toasts[0])
	default:
		HTMX(w).Trigger(ToastEvent, toasts)
	}
}
