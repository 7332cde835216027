// Package web provides embedded layouts and page templates for the site.
// Templates are embedded at build time and parsed once at startup.
package web

import (
	"embed"

	pkgweb "github.com/urlmap-dev/urlmap/pkg/web"
)

//go:embed layouts/*.html
var layoutFS embed.FS

//go:embed pages/*.html
var pageFS embed.FS

// Layout is the shared layout template every page renders through.
const Layout = "site.html"

// Page definitions for the site. Routes and names are bound in the route
// table; templates are resolved here.
var (
	Home     = pkgweb.PageDef{Route: "/", Template: "home.html", Title: "Home", Name: "index"}
	HTML1    = pkgweb.PageDef{Route: "/html1", Template: "html1.html", Title: "Page One", Name: "html_page2"}
	HTML2    = pkgweb.PageDef{Route: "/html2", Template: "html2.html", Title: "Page Two", Name: "html_page3"}
	NotFound = pkgweb.PageDef{Template: "404.html", Title: "Not Found"}
)

// NewTemplateSet parses the embedded layouts and page templates for the
// given base path.
func NewTemplateSet(basePath string) (*pkgweb.TemplateSet, error) {
	pages := []pkgweb.PageDef{Home, HTML1, HTML2, NotFound}
	return pkgweb.NewTemplateSet(layoutFS, pageFS, "layouts/*.html", "pages", basePath, pages)
}
