package adaptor

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"movie-review/internal/dto/response"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "create", "read", "error"}

// fieldView is what the "field" and "field_help" templates render.
type fieldView struct {
	Action string
	Prefix string
	Field  response.FieldResponse
}

type dialogView struct {
	Action string
	Dialog response.DialogResponse
}

type layoutView struct {
	Title string
	Page  any
}

type errorView struct {
	Status  int
	Message string
}

var templateFuncs = template.FuncMap{
	// review ids are opaque and may hold '/', '?' or '#'
	"pathEscape": url.PathEscape,
	"fieldView": func(action, prefix string, field response.FieldResponse) fieldView {
		return fieldView{Action: action, Prefix: prefix, Field: field}
	},
	"dialogView": func(action string, dialog response.DialogResponse) dialogView {
		return dialogView{Action: action, Dialog: dialog}
	},
}

// Renderer executes the embedded page templates.
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		page, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = page
	}

	return &Renderer{base: base, pages: pages}, nil
}

// Page renders a full document. Output is buffered so a template failure
// never leaves a half written page behind a 200.
func (rd *Renderer) Page(w http.ResponseWriter, status int, name, title string, data any) error {
	tmpl, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", layoutView{Title: title, Page: data}); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Fragment renders one partial template, for HTMX swaps.
func (rd *Renderer) Fragment(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := rd.base.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render fragment %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (rd *Renderer) Error(w http.ResponseWriter, status int, message string) error {
	return rd.Page(w, status, "error", http.StatusText(status), errorView{Status: status, Message: message})
}
