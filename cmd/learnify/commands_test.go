package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["healthcheck"])
	assert.NotNil(t, root.RunE, "serve is the default action")
}

func TestHealthcheckCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	root := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	root.SetArgs([]string{"healthcheck", "--addr", srv.Listener.Addr().String()})
	require.NoError(t, root.Execute())

	srv.Close()
	root = newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	root.SetArgs([]string{"healthcheck", "--addr", srv.Listener.Addr().String(), "--timeout", "200ms"})
	assert.Error(t, root.Execute())
}
