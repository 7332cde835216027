package routes

import (
	"errors"
	"net/http"
)

// ErrNameNotFound is returned by Reverse when no registered route carries
// the requested name.
var ErrNameNotFound = errors.New("route name not found")

// System defines the interface for route registration, reverse lookup, and
// HTTP dispatcher construction. Registration happens once at startup; the
// table is immutable after Build.
type System interface {
	RegisterRoute(route Route)
	RegisterGroup(group Group)
	SetFallback(handler http.HandlerFunc)
	Build() http.Handler
	Routes() []Route
	Groups() []Group
	Reverse(name string, args ...string) (string, error)
}
