// Package routes implements the route table over an ordered entry list.
// Entries are evaluated in declaration order and the first match wins, so
// registration order is preserved exactly as declared.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	pkgroutes "github.com/urlmap-dev/urlmap/pkg/routes"
)

type table struct {
	routes   []pkgroutes.Route
	groups   []pkgroutes.Group
	names    map[string]string
	fallback http.HandlerFunc
	logger   *slog.Logger
}

// New creates an empty route table with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &table{
		routes: []pkgroutes.Route{},
		groups: []pkgroutes.Group{},
		names:  map[string]string{},
		logger: logger,
	}
}

func (t *table) Routes() []pkgroutes.Route {
	return t.routes
}

func (t *table) Groups() []pkgroutes.Group {
	return t.groups
}

// RegisterRoute appends a route to the table. Named routes are indexed for
// reverse lookup; a duplicate name keeps its first binding and is surfaced
// in the startup log.
func (t *table) RegisterRoute(route pkgroutes.Route) {
	t.routes = append(t.routes, route)
	t.index(route.Name, route.Pattern)
}

// RegisterGroup appends a route group. Group routes dispatch and reverse
// under the group prefix.
func (t *table) RegisterGroup(group pkgroutes.Group) {
	t.groups = append(t.groups, group)
	for _, route := range group.Routes {
		t.index(route.Name, group.Prefix+route.Pattern)
	}
}

// SetFallback sets the handler invoked when no entry matches the request.
func (t *table) SetFallback(handler http.HandlerFunc) {
	t.fallback = handler
}

func (t *table) index(name, pattern string) {
	if name == "" {
		return
	}
	if existing, ok := t.names[name]; ok {
		t.logger.Warn("duplicate route name", "name", name, "kept", existing, "ignored", pattern)
		return
	}
	t.names[name] = pattern
}

// Reverse resolves a route name to its literal path. Parameterized patterns
// consume one positional argument per {param} segment.
func (t *table) Reverse(name string, args ...string) (string, error) {
	pattern, ok := t.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", pkgroutes.ErrNameNotFound, name)
	}

	segments := strings.Split(pattern, "/")
	next := 0
	for i, segment := range segments {
		if !isParam(segment) {
			continue
		}
		if next >= len(args) {
			return "", fmt.Errorf("reverse %s: pattern %s needs more than %d args", name, pattern, len(args))
		}
		segments[i] = args[next]
		next++
	}
	if next < len(args) {
		return "", fmt.Errorf("reverse %s: pattern %s takes %d args, got %d", name, pattern, next, len(args))
	}

	return strings.Join(segments, "/"), nil
}

// Build constructs the dispatcher. The returned handler scans entries in
// declaration order and invokes the first handler whose method and pattern
// match the request; unmatched requests fall through to the fallback.
func (t *table) Build() http.Handler {
	entries := make([]entry, 0, len(t.routes))
	for _, route := range t.routes {
		entries = append(entries, newEntry(route.Method, route.Pattern, route.Handler))
	}
	for _, group := range t.groups {
		for _, route := range group.Routes {
			entries = append(entries, newEntry(route.Method, group.Prefix+route.Pattern, route.Handler))
		}
	}

	fallback := t.fallback
	if fallback == nil {
		fallback = http.NotFound
	}

	return &dispatcher{entries: entries, fallback: fallback}
}

type entry struct {
	method   string
	segments []string
	handler  http.HandlerFunc
}

func newEntry(method, pattern string, handler http.HandlerFunc) entry {
	return entry{
		method:   method,
		segments: strings.Split(pattern, "/"),
		handler:  handler,
	}
}

type dispatcher struct {
	entries  []entry
	fallback http.HandlerFunc
}

func (d *dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := strings.Split(r.URL.Path, "/")

	for _, e := range d.entries {
		if e.method != "" && e.method != r.Method {
			continue
		}
		params, ok := match(e.segments, segments)
		if !ok {
			continue
		}
		for name, value := range params {
			r.SetPathValue(name, value)
		}
		e.handler(w, r)
		return
	}

	d.fallback(w, r)
}

// match compares pattern segments against path segments. A {param} segment
// matches any single non-empty path segment and captures its value.
func match(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	var params map[string]string
	for i, segment := range pattern {
		if isParam(segment) {
			if path[i] == "" {
				return nil, false
			}
			if params == nil {
				params = map[string]string{}
			}
			params[segment[1:len(segment)-1]] = path[i]
			continue
		}
		if segment != path[i] {
			return nil, false
		}
	}
	return params, true
}

func isParam(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
