package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer renders the landing page from the embedded templates.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded templates once.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("page").
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &Renderer{page: t}, nil
}

// Render executes the page template into w. Output is buffered so a template
// failure never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, view PageView) error {
	var buf bytes.Buffer
	if err := r.page.ExecuteTemplate(&buf, "page.html", view); err != nil {
		return fmt.Errorf("web: execute: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
