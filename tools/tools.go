//go:build tools

// Package tools lists the development tools used on this repo.
// They are run via `go run`/`go install` and are not tracked in go.mod.
package tools

// Air rebuilds the server on Go changes. With DEV=true templates and static
// files are read from disk, so edits under frontend/ need no rebuild.
//
//	go install github.com/air-verse/air@v1.63.0
//	air -c .air.toml -- serve
//
// mockgen regenerates the port doubles in internal/mocks.
//
//	go generate ./internal/mocks
