// Package docs provides the interactive API documentation handler using
// Scalar UI. The page is embedded at compile time and renders the OpenAPI
// document served at the configured spec path.
package docs

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/JaimeStill/api-template/pkg/routes"
)

//go:embed index.html
var indexHTML []byte

// specPathPlaceholder marks where index.html embeds the URL of the
// OpenAPI document.
const specPathPlaceholder = "{{SPEC_PATH}}"

// Handler serves the interactive API documentation interface.
type Handler struct {
	page []byte
}

// NewHandler creates a documentation handler rendering the OpenAPI
// document at specPath.
func NewHandler(specPath string) *Handler {
	return &Handler{
		page: bytes.ReplaceAll(indexHTML, []byte(specPathPlaceholder), []byte(specPath)),
	}
}

// Routes returns the route group for documentation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/docs",
		Description: "Interactive API documentation powered by Scalar",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.serveIndex},
		},
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.page)
}
