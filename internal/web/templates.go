// ABOUTME: Embedded HTML templates for the dashboard page.
// ABOUTME: Parsed once at server construction.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
