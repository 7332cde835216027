// Package routes defines the route table contract: an ordered sequence of
// (pattern, handler, optional name) entries registered once at startup and
// consumed by the dispatcher built from them.
package routes

import "net/http"

// Route binds a URL pattern to a handler. Name is optional and, when set,
// makes the route addressable through reverse lookup. Patterns are literal
// paths, optionally containing {param} segments exposed via r.PathValue.
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler http.HandlerFunc
}

// Group is a collection of routes sharing a common URL prefix.
type Group struct {
	Prefix string
	Routes []Route
}
