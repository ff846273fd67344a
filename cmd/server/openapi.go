package main

import (
	"fmt"

	"github.com/JaimeStill/api-template/internal/config"
	"github.com/JaimeStill/api-template/internal/health"
	"github.com/JaimeStill/api-template/pkg/openapi"
	"github.com/JaimeStill/api-template/pkg/routes"
)

// generateSpec builds the OpenAPI document from the registered routes,
// validates it, and returns the serialized bytes served at SpecPath.
// A document with a dangling reference fails startup.
func generateSpec(rs routes.System, cfg *config.Config) ([]byte, error) {
	components := openapi.NewComponents()
	components.AddSchemas(health.Schemas())

	spec := buildSpec(rs, components, cfg)

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("validate spec: %w", err)
	}

	generated, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal spec: %w", err)
	}

	return generated, nil
}

func buildSpec(rs routes.System, components *openapi.Components, cfg *config.Config) *openapi.Spec {
	spec := &openapi.Spec{
		OpenAPI: openapi.Version,
		Info: &openapi.Info{
			Title:       cfg.OpenAPI.Title,
			Version:     cfg.OpenAPI.Version,
			Description: cfg.OpenAPI.Description,
		},
		Components: components,
		Paths:      make(map[string]*openapi.PathItem),
	}

	for _, group := range rs.Groups() {
		processGroup(spec, "", group)
	}

	for _, route := range rs.Routes() {
		if route.OpenAPI == nil {
			continue
		}

		addOperation(spec, route.Pattern, route.Method, route.OpenAPI)
	}

	return spec
}

func processGroup(spec *openapi.Spec, parentPrefix string, group routes.Group) {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}

		addOperation(spec, prefix+route.Pattern, route.Method, op)
	}

	for _, child := range group.Children {
		processGroup(spec, prefix, child)
	}
}

func addOperation(spec *openapi.Spec, path, method string, op *openapi.Operation) {
	if spec.Paths[path] == nil {
		spec.Paths[path] = &openapi.PathItem{}
	}

	switch method {
	case "GET":
		spec.Paths[path].Get = op
	case "POST":
		spec.Paths[path].Post = op
	case "PUT":
		spec.Paths[path].Put = op
	case "DELETE":
		spec.Paths[path].Delete = op
	}
}
