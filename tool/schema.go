package tool

import "github.com/invopop/jsonschema"

// GenerateSchema derives the JSON-schema parameters value for a typed
// tool input struct. Field descriptions come from jsonschema_description
// struct tags. The schema is inlined (no $ref) and closed to additional
// properties, which is what strict mode expects.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
