// Package handler serves the HTML surface: form pages, submits with
// redirect-on-success, and the public product listing.
package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render writes the named template with the given status code.
func render(w http.ResponseWriter, status int, name string, data any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

// redirect issues a 303 so a refresh after a form submit never
// re-posts.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
