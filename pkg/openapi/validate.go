package openapi

import (
	"fmt"
	"strings"
)

// RefError reports a reference in the specification that has no matching
// definition in components. Location identifies where the dangling
// reference was found (e.g. "paths./health.get.responses.200").
type RefError struct {
	Location string
	Ref      string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("openapi: %s references %q which is not defined", e.Location, e.Ref)
}

// Validate checks that every $ref in the specification resolves to a
// definition in components. It is intended to run once at startup so a
// malformed document fails the process instead of being served.
func (s *Spec) Validate() error {
	for path, item := range s.Paths {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			loc := fmt.Sprintf("paths.%s.%s", path, method)
			if err := s.validateOperation(loc, op); err != nil {
				return err
			}
		}
	}

	if s.Components == nil {
		return nil
	}

	for name, schema := range s.Components.Schemas {
		loc := "components.schemas." + name
		if err := s.validateSchema(loc, schema); err != nil {
			return err
		}
	}

	for name, response := range s.Components.Responses {
		loc := "components.responses." + name
		if err := s.validateResponse(loc, response); err != nil {
			return err
		}
	}

	return nil
}

func (s *Spec) validateOperation(loc string, op *Operation) error {
	for _, param := range op.Parameters {
		if param.Schema == nil {
			continue
		}
		if err := s.validateSchema(fmt.Sprintf("%s.parameters.%s", loc, param.Name), param.Schema); err != nil {
			return err
		}
	}

	if op.RequestBody != nil {
		for media, mt := range op.RequestBody.Content {
			if mt.Schema == nil {
				continue
			}
			if err := s.validateSchema(fmt.Sprintf("%s.requestBody.%s", loc, media), mt.Schema); err != nil {
				return err
			}
		}
	}

	for status, response := range op.Responses {
		if err := s.validateResponse(fmt.Sprintf("%s.responses.%d", loc, status), response); err != nil {
			return err
		}
	}

	return nil
}

func (s *Spec) validateResponse(loc string, response *Response) error {
	if response.Ref != "" {
		if err := s.resolveRef(loc, response.Ref); err != nil {
			return err
		}
	}

	for media, mt := range response.Content {
		if mt.Schema == nil {
			continue
		}
		if err := s.validateSchema(loc+"."+media, mt.Schema); err != nil {
			return err
		}
	}

	return nil
}

func (s *Spec) validateSchema(loc string, schema *Schema) error {
	if schema.Ref != "" {
		if err := s.resolveRef(loc, schema.Ref); err != nil {
			return err
		}
	}

	if schema.Items != nil {
		if err := s.validateSchema(loc+".items", schema.Items); err != nil {
			return err
		}
	}

	for name, prop := range schema.Properties {
		if err := s.validateSchema(loc+".properties."+name, prop); err != nil {
			return err
		}
	}

	return nil
}

func (s *Spec) resolveRef(loc, ref string) error {
	name, kind, ok := splitRef(ref)
	if !ok {
		return &RefError{Location: loc, Ref: ref}
	}

	if s.Components != nil {
		switch kind {
		case "schemas":
			if _, ok := s.Components.Schemas[name]; ok {
				return nil
			}
		case "responses":
			if _, ok := s.Components.Responses[name]; ok {
				return nil
			}
		}
	}

	return &RefError{Location: loc, Ref: ref}
}

func splitRef(ref string) (name, kind string, ok bool) {
	switch {
	case strings.HasPrefix(ref, "#/components/schemas/"):
		return strings.TrimPrefix(ref, "#/components/schemas/"), "schemas", true
	case strings.HasPrefix(ref, "#/components/responses/"):
		return strings.TrimPrefix(ref, "#/components/responses/"), "responses", true
	}
	return "", "", false
}
