package routes

import (
	"net/http"

	"github.com/JaimeStill/api-template/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// The optional OpenAPI operation documents the route in the generated
// specification; routes without one are dispatched but undocumented.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
