package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnify/learnify-ui/internal/domain/landing"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMX(r))
	assert.False(t, WantsPartial(r))

	r.Header.Set("Hx-Request", "TRUE")
	assert.True(t, IsHTMX(r))
	assert.True(t, WantsPartial(r))

	r.Header.Set("Hx-History-Restore-Request", "true")
	assert.True(t, IsHistoryRestore(r))
	assert.False(t, WantsPartial(r), "history restores need the full layout")
}

func TestHTMX_Trigger(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Trigger("courses:reload", nil)
	assert.JSONEq(t, `{"courses:reload":true}`, rec.Header().Get("Hx-Trigger"))

	rec = httptest.NewRecorder()
	HTMX(rec).Trigger("a", 1).Trigger("b", "x")
	assert.JSONEq(t, `{"b":"x"}`, rec.Header().Get("Hx-Trigger"), "the last trigger wins")
}

func TestTriggerToasts(t *testing.T) {
	tests := []struct {
		name   string
		toasts []landing.Toast
		want   string
	}{
		{name: "none"},
		{
			name:   "blank message dropped",
			toasts: []landing.Toast{{Kind: landing.ToastInfo, Message: "  "}},
		},
		{
			name:   "single toast is an object",
			toasts: []landing.Toast{{Kind: landing.ToastSuccess, Message: "Bye"}},
			want:   `{"showToast":{"type":"success","message":"Bye"}}`,
		},
		{
			name: "several toasts are an array",
			toasts: []landing.Toast{
				{Kind: landing.ToastInfo, Message: "one"},
				{Kind: landing.ToastError, Message: "two"},
			},
			want: `{"showToast":[{"type":"info","message":"one"},{"type":"error","message":"two"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			triggerToasts(rec, tt.toasts)
			got := rec.Header().Get("Hx-Trigger")
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.JSONEq(t, tt.want, got)
		})
	}
}
