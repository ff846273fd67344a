package openapi

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes the specification as indented JSON suitable for
// serving directly or writing to disk. HTML escaping is disabled so path
// templates and descriptions round-trip unchanged.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(spec); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
