package main

import (
	"net/http"

	"github.com/JaimeStill/api-template/internal/config"
	"github.com/JaimeStill/api-template/internal/health"
	"github.com/JaimeStill/api-template/pkg/routes"
	"github.com/JaimeStill/api-template/web/docs"
)

// SpecPath is the URL of the machine-readable OpenAPI document.
const SpecPath = "/api-docs/openapi.json"

// registerRoutes configures all HTTP routes for the service. The OpenAPI
// document is generated from the registrations and validated before the
// server accepts traffic.
func registerRoutes(r routes.System, runtime *Runtime, cfg *config.Config) error {
	healthHandler := health.NewHandler(cfg.OpenAPI.Version, runtime.Lifecycle)
	r.RegisterGroup(healthHandler.Routes())

	specBytes, err := generateSpec(r, cfg)
	if err != nil {
		return err
	}

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: SpecPath,
		Handler: serveOpenAPISpec(specBytes),
	})

	docsHandler := docs.NewHandler(SpecPath)
	r.RegisterGroup(docsHandler.Routes())

	return nil
}

func serveOpenAPISpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
