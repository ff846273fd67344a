package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents creates a Components instance seeded with the error
// conventions shared by every endpoint: an ErrorResponse schema and the
// standard failure responses that reference it.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"ErrorResponse": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {
						Type:        "string",
						Description: "Human-readable error message",
						Example:     "resource not found",
					},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "The request is malformed or fails validation",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorResponse")},
				},
			},
			"NotFound": {
				Description: "The requested resource does not exist",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorResponse")},
				},
			},
		},
	}
}

// AddSchemas merges the provided schemas into the components.
// Existing schemas with the same name are preserved.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		if _, ok := c.Schemas[name]; !ok {
			c.Schemas[name] = schema
		}
	}
}

// AddResponses merges the provided responses into the components.
// Existing responses with the same name are preserved.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		if _, ok := c.Responses[name]; !ok {
			c.Responses[name] = response
		}
	}
}
