// Package web provides infrastructure for serving HTML pages with Go
// templates. Page definitions are declarative and templates are pre-parsed
// at startup so malformed templates fail before the server accepts traffic.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageDef defines a page with its route, template file, display title, and
// optional route name for reverse lookup.
type PageDef struct {
	Route    string
	Template string
	Title    string
	Name     string
}

// PageData is the payload passed to page templates during rendering.
// BasePath enables portable URL generation in templates; Data carries
// page-specific content.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed page templates and a base path for URL
// generation. Each page template is cloned from the shared layouts.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses layout templates from layoutFS and clones them for
// each page template found under pageSubdir of pageFS. Parsing happens once,
// at startup.
func NewTemplateSet(layoutFS, pageFS fs.FS, layoutGlob, pageSubdir, basePath string, pages []PageDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageSub, err := fs.Sub(pageFS, pageSubdir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		if _, err = t.ParseFS(pageSub, p.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p.Template, err)
		}
		pageTemplates[p.Template] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in all rendered PageData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler returns an HTTP handler that renders the given page with no
// page-specific data.
func (ts *TemplateSet) PageHandler(layout string, page PageDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Title: page.Title, BasePath: ts.basePath}
		if err := ts.Render(w, layout, page.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns an HTTP handler that renders an error template with
// the given status code.
func (ts *TemplateSet) ErrorHandler(layout, templateName string, status int, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		data := PageData{Title: title, BasePath: ts.basePath}
		if err := ts.Render(w, layout, templateName, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// Render executes the named layout template for the given page template.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, layoutName, data)
}
