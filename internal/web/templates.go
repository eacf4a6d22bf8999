// Package web renders the HTML pages from templates embedded in the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/workjournal/workjournal/internal/model"
)

//go:embed templates/*.tmpl
var files embed.FS

// IndexData feeds the listing page: week groups plus the create form.
type IndexData struct {
	Weeks   []model.WeekSummary
	Dropped int
}

// EditData feeds the single-entry page. The page is read-only.
type EditData struct {
	Entry model.Entry
	Date  string
}

// ErrorData feeds the error page. Fields carries per-field validation detail
// on 400 responses and is empty otherwise.
type ErrorData struct {
	Status  int
	Title   string
	Message string
	Fields  map[string]string
}

// Renderer holds the parsed page templates. Each page is parsed against the
// shared layout so they can all define a "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates. Templates ship with the binary,
// so a parse failure is a build defect and panics via template.Must.
func NewRenderer() *Renderer {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"index", "edit", "error"} {
		pages[name] = template.Must(template.ParseFS(files,
			"templates/layout.html.tmpl",
			fmt.Sprintf("templates/%s.html.tmpl", name)))
	}
	return &Renderer{pages: pages}
}

// Render executes the named page template with the given data.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template: %s", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
