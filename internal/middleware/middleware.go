// Package middleware provides HTTP middleware composition and the standard
// middleware stack for the service.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes middleware into a single chain applied around a handler.
type System interface {
	Use(m Middleware)
	Apply(handler http.Handler) http.Handler
}

type chain struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &chain{stack: []Middleware{}}
}

// Use appends middleware to the chain. Middleware runs in registration
// order: the first registered is the outermost wrapper.
func (c *chain) Use(m Middleware) {
	c.stack = append(c.stack, m)
}

// Apply wraps the handler with all registered middleware.
func (c *chain) Apply(handler http.Handler) http.Handler {
	for i := len(c.stack) - 1; i >= 0; i-- {
		handler = c.stack[i](handler)
	}
	return handler
}
