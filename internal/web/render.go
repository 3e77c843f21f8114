// Package web holds the embedded HTML templates and renders them.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"fyyur/internal/datetime"
	"fyyur/internal/forms"
)

//go:embed templates
var files embed.FS

// Page is the data handed to every template.
type Page struct {
	Flashes    []string
	Now        time.Time
	Data       any
	Form       any
	ID         int64
	SearchTerm string
	Section    string
	Genres     []string
	States     []string
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/ against the shared layout. Pages are
// addressed by directory and base name, e.g. "pages/home" or "errors/404".
func NewRenderer(f *datetime.Formatter) (*Renderer, error) {
	base, err := template.New("").Funcs(Funcs(f)).ParseFS(files, "templates/layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"pages", "forms", "errors"} {
		matches, err := fs.Glob(files, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range matches {
			t, err := base.Clone()
			if err != nil {
				return nil, err
			}
			if _, err := t.ParseFS(files, file); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			name := dir + "/" + strings.TrimSuffix(path.Base(file), ".html")
			r.pages[name] = t
		}
	}
	return r, nil
}

// Funcs is the template function map. datetime accepts a time.Time or date-time text.
func Funcs(f *datetime.Formatter) template.FuncMap {
	return template.FuncMap{
		"datetime": func(v any, name string) (string, error) {
			style, err := datetime.ParseStyle(name)
			if err != nil {
				return "", err
			}
			switch t := v.(type) {
			case time.Time:
				return f.FormatTime(t, style), nil
			case string:
				return f.Format(t, style)
			default:
				return "", fmt.Errorf("datetime: unsupported value %T", v)
			}
		},
		"has": func(list []string, v string) bool {
			return slices.Contains(list, v)
		},
	}
}

// Render executes the named page into a buffer first so a template failure never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p *Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if p.Now.IsZero() {
		p.Now = time.Now()
	}
	if p.Genres == nil {
		p.Genres = forms.Genres
	}
	if p.States == nil {
		p.States = forms.States
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
