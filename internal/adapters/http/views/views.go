// Package views holds the server-rendered HTML templates for the quote pages.
package views

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load parses every embedded template into one set suitable for
// gin's Engine.SetHTMLTemplate.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing view templates: %w", err)
	}

	return tmpl, nil
}

// MustLoad is Load for program initialization. It panics on a template error.
func MustLoad() *template.Template {
	tmpl, err := Load()
	if err != nil {
		panic(err)
	}

	return tmpl
}
