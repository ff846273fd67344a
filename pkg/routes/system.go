// Package routes defines the route registration contract shared by the
// HTTP dispatcher and the OpenAPI specification generator. Registered
// routes are the single source of truth for both: a route is served and
// documented from the same declaration.
package routes

import "net/http"

// System defines the interface for route registration and HTTP handler building.
// Implementations handle the actual registration and multiplexer construction.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}
