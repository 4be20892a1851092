package structured

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/modelkit/claudecode/contract"
	"github.com/modelkit/claudecode/extract"
	"github.com/modelkit/claudecode/temppath"
)

// CapturePath allocates the path where the CLI is told to write its
// schema-constrained JSON answer.
func CapturePath(workingDir string) string {
	return temppath.OutputFilePath(workingDir, contract.PrefixStructuredOutput, ".json")
}

// StructureDirPath allocates the directory where the CLI builds a
// file/folder data structure, using the short suffix form.
func StructureDirPath(workingDir string) string {
	return temppath.TempDirectoryPath(workingDir, contract.PrefixDataStructure, true)
}

// ReadCapture reads a capture file and unmarshals its JSON into a map.
// When the file holds prose around the JSON (the CLI echoed commentary
// into it), extraction falls back to finding the JSON payload inside.
func ReadCapture(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}
	return decodeCapture(string(raw))
}

func decodeCapture(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("capture file is empty")
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out, nil
	}

	found, ok := extract.JSON(trimmed)
	if !ok {
		return nil, fmt.Errorf("capture file holds no JSON object")
	}
	if err := json.Unmarshal([]byte(found), &out); err != nil {
		return nil, fmt.Errorf("parse extracted JSON: %w", err)
	}
	return out, nil
}

// Validate checks the data map against the schema's required fields,
// including nested objects. It reports the first missing field by path.
func Validate(data map[string]any, schema Schema) error {
	return validateObject(data, schema, schema, "")
}

func validateObject(data map[string]any, objSchema, root Schema, path string) error {
	for _, name := range requiredFields(objSchema) {
		if _, ok := data[name]; !ok {
			return fmt.Errorf("missing required field %s", joinPath(path, name))
		}
	}

	props := properties(objSchema)
	for _, name := range sortedKeys(props) {
		value, ok := data[name]
		if !ok {
			continue
		}
		field, _ := props[name].(map[string]any)
		if field == nil {
			continue
		}
		field = ResolveRef(field, root)
		if fieldType(field) == "object" {
			obj, ok := value.(map[string]any)
			if !ok {
				return fmt.Errorf("field %s: expected object, got %T", joinPath(path, name), value)
			}
			if err := validateObject(obj, field, root, joinPath(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
