package viewmodel

import "github.com/learnify/learnify-ui/internal/domain/landing"

// Layout captures shared chrome metadata (titles, language, session flag, pending toasts).
type Layout struct {
	Title           string
	Lang            string
	Brand           string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	Toasts          []landing.Toast
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

// LayoutData implements LayoutProvider.
func (l *Layout) LayoutData() *Layout { return l }

// Translator resolves message ids for the request language.
type Translator interface {
	T(id string) string
	TData(id string, data map[string]any) string
}
