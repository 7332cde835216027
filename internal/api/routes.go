// Package api declares the application's route table: the ordered mapping
// from URL paths to view handlers, with names for reverse lookup.
package api

import (
	"net/http"

	"github.com/urlmap-dev/urlmap/internal/pages"
	"github.com/urlmap-dev/urlmap/internal/records"
	"github.com/urlmap-dev/urlmap/pkg/routes"
)

// RegisterRoutes populates the route table. Entries dispatch in declaration
// order; the first matching entry wins.
func RegisterRoutes(table routes.System, views *pages.Handler, data *records.Handler, metrics http.Handler) {
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/", Name: "index", Handler: views.Index})
	// Second data view is retired from the deployment; the path stays out of
	// the table so requests to it fall through to the 404 handler.
	// table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/data-acces2", Name: "index2", Handler: data.DataRender2})
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/data-access3", Name: "index3", Handler: data.DataRender})
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/data-access3/{id}", Name: "record_detail", Handler: data.Detail})
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/html1", Name: "html_page2", Handler: views.HTMLPage})
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/html2", Name: "html_page3", Handler: data.HTMLPage})

	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/healthz", Handler: handleHealthCheck})
	table.RegisterRoute(routes.Route{Method: "GET", Pattern: "/metrics", Handler: metrics.ServeHTTP})

	table.SetFallback(views.NotFound())
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
