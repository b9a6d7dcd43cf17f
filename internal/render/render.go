package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var embedded embed.FS

type Renderer struct {
	t *template.Template
}

// NewRenderer parses templates from glob, or the embedded set when glob is empty.
func NewRenderer(glob string) (*Renderer, error) {
	var (
		t   *template.Template
		err error
	)
	if glob == "" {
		t, err = template.New("").Funcs(funcs).ParseFS(embedded, "templates/*.html")
	} else {
		t, err = template.New("").Funcs(funcs).ParseGlob(glob)
	}
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

var funcs = template.FuncMap{
	"coord": func(f float64) string { return fmt.Sprintf("%.6f", f) },
}

// Render executes into a buffer first so a failing template never sends a partial page.
func (r *Renderer) Render(w http.ResponseWriter, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)
	return err
}
