package structured

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// WriteStructure materializes data under baseDir following the schema:
// scalars become {field}.txt files, arrays become directories of numbered
// entries, and nested objects become subdirectories. Used by tests and
// debugging tooling to produce the structure the instructions describe.
func WriteStructure(baseDir string, data map[string]any, schema Schema) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create structure dir: %w", err)
	}

	props := properties(schema)
	for _, name := range sortedKeys(props) {
		value, ok := data[name]
		if !ok {
			continue
		}
		field, _ := props[name].(map[string]any)
		if field == nil {
			field = Schema{}
		}
		field = ResolveRef(field, schema)
		if err := writeField(baseDir, name, value, field, schema); err != nil {
			return err
		}
	}
	return nil
}

func writeField(dir, name string, value any, field, root Schema) error {
	switch fieldType(field) {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("field %s: expected object, got %T", name, value)
		}
		return WriteStructure(filepath.Join(dir, name), obj, field)

	case "array":
		list, ok := value.([]any)
		if !ok {
			return fmt.Errorf("field %s: expected array, got %T", name, value)
		}
		arrDir := filepath.Join(dir, name)
		if err := os.MkdirAll(arrDir, 0o755); err != nil {
			return fmt.Errorf("create array dir %s: %w", name, err)
		}
		items := ResolveRef(itemsSchema(field), root)
		for i, entry := range list {
			if fieldType(items) == "object" {
				obj, ok := entry.(map[string]any)
				if !ok {
					return fmt.Errorf("field %s[%d]: expected object, got %T", name, i, entry)
				}
				if err := WriteStructure(filepath.Join(arrDir, fmt.Sprintf("%04d", i)), obj, items); err != nil {
					return err
				}
			} else {
				path := filepath.Join(arrDir, fmt.Sprintf("%04d.txt", i))
				if err := os.WriteFile(path, []byte(formatScalar(entry)), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
		}
		return nil

	default:
		path := filepath.Join(dir, name+".txt")
		if err := os.WriteFile(path, []byte(formatScalar(value)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ReadStructure reads a file/folder structure back into a data map,
// converting file contents to the types the schema declares. Missing
// required fields are an error naming the expected file or directory.
func ReadStructure(baseDir string, schema Schema) (map[string]any, error) {
	return readObject(baseDir, schema, schema)
}

func readObject(dir string, objSchema, root Schema) (map[string]any, error) {
	out := map[string]any{}
	required := map[string]bool{}
	for _, name := range requiredFields(objSchema) {
		required[name] = true
	}

	props := properties(objSchema)
	for _, name := range sortedKeys(props) {
		field, _ := props[name].(map[string]any)
		if field == nil {
			field = Schema{}
		}
		field = ResolveRef(field, root)

		value, found, err := readField(dir, name, field, root)
		if err != nil {
			return nil, err
		}
		if !found {
			if required[name] {
				return nil, fmt.Errorf("required field %s missing under %s", name, dir)
			}
			continue
		}
		out[name] = value
	}
	return out, nil
}

func readField(dir, name string, field, root Schema) (any, bool, error) {
	switch fieldType(field) {
	case "object":
		sub := filepath.Join(dir, name)
		info, err := os.Stat(sub)
		if err != nil || !info.IsDir() {
			return nil, false, nil
		}
		obj, err := readObject(sub, field, root)
		if err != nil {
			return nil, false, err
		}
		return obj, true, nil

	case "array":
		sub := filepath.Join(dir, name)
		info, err := os.Stat(sub)
		if err != nil || !info.IsDir() {
			return nil, false, nil
		}
		items := ResolveRef(itemsSchema(field), root)
		list, err := readArray(sub, items, root)
		if err != nil {
			return nil, false, err
		}
		return list, true, nil

	default:
		path := filepath.Join(dir, name+".txt")
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("read %s: %w", path, err)
		}
		value, err := parseScalar(strings.TrimSpace(string(raw)), fieldType(field))
		if err != nil {
			return nil, false, fmt.Errorf("field %s: %w", name, err)
		}
		return value, true, nil
	}
}

func readArray(dir string, items, root Schema) ([]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read array dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		byName[e.Name()] = e
	}
	sort.Strings(names)

	out := make([]any, 0, len(names))
	for _, n := range names {
		e := byName[n]
		if fieldType(items) == "object" {
			if !e.IsDir() {
				continue
			}
			obj, err := readObject(filepath.Join(dir, n), items, root)
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		} else {
			if e.IsDir() || !strings.HasSuffix(n, ".txt") {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(dir, n))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", filepath.Join(dir, n), err)
			}
			value, err := parseScalar(strings.TrimSpace(string(raw)), fieldType(items))
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", n, err)
			}
			out = append(out, value)
		}
	}
	return out, nil
}

// parseScalar converts a file's text to the declared type. Numbers without
// a decimal point or exponent parse as integers; bools accept true/1/yes in
// any case.
func parseScalar(text, typ string) (any, error) {
	switch typ {
	case "boolean":
		switch strings.ToLower(text) {
		case "true", "1", "yes":
			return true, nil
		default:
			return false, nil
		}
	case "number", "integer":
		if typ == "number" && (strings.ContainsAny(text, ".eE")) {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("parse number %q: %w", text, err)
			}
			return f, nil
		}
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if typ == "number" {
				f, ferr := strconv.ParseFloat(text, 64)
				if ferr == nil {
					return f, nil
				}
			}
			return nil, fmt.Errorf("parse %s %q: %w", typ, text, err)
		}
		return i, nil
	default:
		return text, nil
	}
}
