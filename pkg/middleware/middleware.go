// Package middleware provides HTTP middleware composition and the
// cross-cutting middleware shared by services built on this template.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes a stack of middleware around a final handler.
// Middleware is applied in registration order: the first registered
// middleware is the outermost wrapper.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{}
}

// Use appends middleware to the stack.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

// Apply wraps the handler with the registered middleware stack.
func (s *system) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.stack) - 1; i >= 0; i-- {
		wrapped = s.stack[i](wrapped)
	}
	return wrapped
}
