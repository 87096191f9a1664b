// Package schema generates JSON schemas from Go config structs.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema produces a JSON schema for the given value's type.
// Optional fields stay optional; unknown keys are permitted so that a
// config document can carry host-specific extras.
func GenerateSchema(v any) (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := reflector.Reflect(v)
	return json.Marshal(s)
}
