package health

import "github.com/JaimeStill/api-template/pkg/openapi"

func healthOperation() *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Health check",
		Description: "Liveness probe. Always returns ok while the process is serving requests.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Service is healthy", "HealthResponse"),
		},
	}
}

func readinessOperation() *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Readiness check",
		Description: "Reports whether startup has completed and the service is accepting traffic.",
		Responses: map[int]*openapi.Response{
			200: {Description: "Service is ready"},
			503: {Description: "Service not ready"},
		},
	}
}

// Schemas returns the component schemas for health endpoints.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"HealthResponse": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status":    {Type: "string", Example: "ok"},
				"version":   {Type: "string", Example: "1.0.0"},
				"timestamp": {Type: "string", Format: "date-time"},
			},
		},
	}
}
