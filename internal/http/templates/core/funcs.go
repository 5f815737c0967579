package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers shared by every template.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"toJSON": toJSON,
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		if deps.ContentTemplateFor == nil {
			return "", errors.New("content template lookup not configured")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped above.
		return template.HTML(buf.String()), nil
	}

	return funcs
}

// toJSON marshals v for use in data attributes. html/template escapes the result
// for the attribute context, so the string is returned as-is.
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
