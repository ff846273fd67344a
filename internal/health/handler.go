// Package health provides the liveness and readiness endpoints used by
// deployment and orchestration tooling.
package health

import (
	"net/http"
	"time"

	"github.com/JaimeStill/api-template/internal/lifecycle"
	"github.com/JaimeStill/api-template/pkg/handlers"
	"github.com/JaimeStill/api-template/pkg/routes"
)

// Response is the liveness check payload. Status is always "ok" while the
// process is serving requests.
type Response struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler serves the health and readiness endpoints.
type Handler struct {
	version string
	ready   lifecycle.ReadinessChecker
}

// NewHandler creates a health handler reporting the given service version.
func NewHandler(version string, ready lifecycle.ReadinessChecker) *Handler {
	return &Handler{
		version: version,
		ready:   ready,
	}
}

// Routes returns the route group for health endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Health"},
		Description: "Liveness and readiness checks",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/health",
				Handler: h.handleHealth,
				OpenAPI: healthOperation(),
			},
			{
				Method:  "GET",
				Pattern: "/readyz",
				Handler: h.handleReadiness,
				OpenAPI: readinessOperation(),
			},
		},
	}
}

// handleHealth responds with an ok status unconditionally. It has no error
// path: a response means the process is alive.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}

// handleReadiness responds 200 once startup has completed, 503 before.
func (h *Handler) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
