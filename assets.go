// Package learnify embeds the browser assets served by the landing page.
package learnify

import "embed"

// In dev mode (IsDev=true) both trees are read from disk instead.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
