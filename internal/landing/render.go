package landing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").Funcs(template.FuncMap{
		"stars": stars,
		// Theme values are fixed at compile time, never visitor input
		"css":  func(s string) template.CSS { return template.CSS(s) }, //nolint:gosec
		"year": func() int { return time.Now().Year() },
	}).ParseFS(templateFS, "templates/page.html.tmpl"),
)

// stars returns one element per star so the template can range over it
func stars(rating int) []struct{} {
	if rating < 0 {
		rating = 0
	}
	return make([]struct{}, rating)
}

// Render writes the full HTML page. Output is buffered so a template error
// never leaves a half-written response.
func Render(w io.Writer, page *Page) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
