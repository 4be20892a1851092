// Package structured implements the structured-output plumbing: JSON schema
// generation, prompt instructions that map a schema onto a file/folder
// structure, type-preserving conversion between that structure and data
// maps, and capture-file handling for schema-constrained responses.
package structured

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Schema is a JSON schema represented as a plain map, the shape shared by
// instruction building and filesystem conversion.
type Schema = map[string]any

// GenerateSchema derives a JSON schema from a Go value using its json and
// jsonschema struct tags. The returned schema is inlined: the top-level
// $ref into $defs is resolved so properties sit at the root, with $defs
// retained for nested references.
func GenerateSchema(v any) (Schema, error) {
	reflector := jsonschema.Reflector{
		// Keep property names as the json tags declare them.
		KeyNamer: func(name string) string { return name },
	}
	s := reflector.Reflect(v)

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal reflected schema: %w", err)
	}

	var out Schema
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal reflected schema: %w", err)
	}

	return inlineRoot(out), nil
}

// inlineRoot lifts the root definition to the top level when the reflector
// produced a bare "$ref": "#/$defs/TypeName" root.
func inlineRoot(s Schema) Schema {
	if _, ok := s["$ref"].(string); !ok {
		return s
	}

	resolved := ResolveRef(s, s)
	if _, stillRef := resolved["$ref"]; stillRef {
		return s
	}

	out := make(Schema, len(resolved)+1)
	for k, v := range resolved {
		out[k] = v
	}
	if defs, ok := s["$defs"]; ok {
		out["$defs"] = defs
	}
	return out
}

// ResolveRef expands a "#/$defs/Name" reference against the root schema.
// Unresolvable references return the input schema unchanged.
func ResolveRef(fieldSchema, rootSchema Schema) Schema {
	ref, _ := fieldSchema["$ref"].(string)
	if ref == "" {
		return fieldSchema
	}

	const prefix = "#/$defs/"
	if !strings.HasPrefix(ref, prefix) {
		return fieldSchema
	}
	name := ref[strings.LastIndex(ref, "/")+1:]

	defs, _ := rootSchema["$defs"].(map[string]any)
	if def, ok := defs[name].(map[string]any); ok {
		return def
	}
	return fieldSchema
}

// properties returns the schema's properties map, or nil.
func properties(s Schema) map[string]any {
	props, _ := s["properties"].(map[string]any)
	return props
}

// requiredFields returns the schema's required field names.
func requiredFields(s Schema) []string {
	raw, _ := s["required"].([]any)
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r.(string); ok {
			out = append(out, name)
		}
	}
	return out
}

// fieldType returns the schema's type, defaulting to string.
func fieldType(s Schema) string {
	if t, ok := s["type"].(string); ok && t != "" {
		return t
	}
	return "string"
}

// itemsSchema returns the items schema of an array field, or an empty map.
func itemsSchema(s Schema) Schema {
	items, _ := s["items"].(map[string]any)
	if items == nil {
		return Schema{}
	}
	return items
}

// description returns the schema's description, or "".
func description(s Schema) string {
	d, _ := s["description"].(string)
	return d
}
