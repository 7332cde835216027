// Package pages provides the primary HTML view handlers for the site.
package pages

import (
	"log/slog"
	"net/http"

	"github.com/urlmap-dev/urlmap/pkg/routes"
	pkgweb "github.com/urlmap-dev/urlmap/pkg/web"
	"github.com/urlmap-dev/urlmap/web"
)

// NavLink is a single navigation entry rendered on the home page. URLs are
// produced through reverse lookup so they always track the route table.
type NavLink struct {
	Label string
	URL   string
}

// Handler serves the statically-templated pages.
type Handler struct {
	templates *pkgweb.TemplateSet
	table     routes.System
	logger    *slog.Logger
}

// NewHandler creates a pages handler rendering through the given template
// set. The route table is consulted at request time for reverse lookup.
func NewHandler(templates *pkgweb.TemplateSet, table routes.System, logger *slog.Logger) *Handler {
	return &Handler{
		templates: templates,
		table:     table,
		logger:    logger.With("system", "pages"),
	}
}

// Index renders the home page with navigation links resolved from the route
// table by name.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	nav := h.navLinks([]namedLink{
		{Label: "Page One", Name: web.HTML1.Name},
		{Label: "Page Two", Name: web.HTML2.Name},
	})

	data := pkgweb.PageData{Title: web.Home.Title, Data: nav}
	if err := h.templates.Render(w, web.Layout, web.Home.Template, data); err != nil {
		h.logger.Error("render home", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HTMLPage renders the first static HTML page.
func (h *Handler) HTMLPage(w http.ResponseWriter, r *http.Request) {
	data := pkgweb.PageData{Title: web.HTML1.Title}
	if err := h.templates.Render(w, web.Layout, web.HTML1.Template, data); err != nil {
		h.logger.Error("render html1", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NotFound returns the fallback handler rendering the 404 page.
func (h *Handler) NotFound() http.HandlerFunc {
	return h.templates.ErrorHandler(web.Layout, web.NotFound.Template, http.StatusNotFound, web.NotFound.Title)
}

type namedLink struct {
	Label string
	Name  string
}

// navLinks resolves route names against the route table, skipping names that
// fail to resolve.
func (h *Handler) navLinks(named []namedLink) []NavLink {
	links := make([]NavLink, 0, len(named))
	for _, n := range named {
		url, err := h.table.Reverse(n.Name)
		if err != nil {
			h.logger.Warn("reverse lookup failed", "name", n.Name, "error", err)
			continue
		}
		links = append(links, NavLink{Label: n.Label, URL: url})
	}
	return links
}
