package structured

import (
	"fmt"
	"sort"
	"strings"
)

// BuildInstructions renders prompt instructions that tell the CLI to write
// its answer as a file/folder structure under baseDir, mirroring the schema.
// Scalars become {field}.txt files, arrays become directories of numbered
// entries, and nested objects become subdirectories.
func BuildInstructions(schema Schema, baseDir string) string {
	var b strings.Builder

	b.WriteString("# Task: Organize Information into File Structure\n\n")
	b.WriteString("Instead of returning JSON, create files and folders to represent the structured data.\n\n")
	fmt.Fprintf(&b, "Base directory: %s\n\n", baseDir)
	b.WriteString("## Required Structure\n\n")

	required := map[string]bool{}
	for _, name := range requiredFields(schema) {
		required[name] = true
	}

	props := properties(schema)
	for _, name := range sortedKeys(props) {
		field, _ := props[name].(map[string]any)
		if field == nil {
			field = Schema{}
		}
		field = ResolveRef(field, schema)
		writeFieldInstructions(&b, schema, name, field, required[name], "")
	}

	b.WriteString("\n## Rules\n\n")
	b.WriteString("- Write each value as plain text with no quotes or JSON syntax\n")
	b.WriteString("- Booleans are the literal words true or false\n")
	b.WriteString("- Number files contain only the number\n")
	b.WriteString("- Array entries are numbered starting from 0000\n")
	b.WriteString("- Create every required file; optional fields may be omitted\n")

	return b.String()
}

func writeFieldInstructions(b *strings.Builder, root Schema, name string, field Schema, isRequired bool, indent string) {
	marker := "optional"
	if isRequired {
		marker = "required"
	}
	desc := description(field)
	if desc != "" {
		desc = " - " + desc
	}

	switch fieldType(field) {
	case "object":
		fmt.Fprintf(b, "%s- `%s/` (directory, %s)%s\n", indent, name, marker, desc)
		props := properties(field)
		nested := map[string]bool{}
		for _, rn := range requiredFields(field) {
			nested[rn] = true
		}
		for _, childName := range sortedKeys(props) {
			child, _ := props[childName].(map[string]any)
			if child == nil {
				child = Schema{}
			}
			child = ResolveRef(child, root)
			writeFieldInstructions(b, root, childName, child, nested[childName], indent+"  ")
		}
	case "array":
		items := ResolveRef(itemsSchema(field), root)
		if fieldType(items) == "object" {
			fmt.Fprintf(b, "%s- `%s/` (directory, %s)%s: numbered subdirectories `0000/`, `0001/`, ... one per entry\n", indent, name, marker, desc)
			props := properties(items)
			nested := map[string]bool{}
			for _, rn := range requiredFields(items) {
				nested[rn] = true
			}
			for _, childName := range sortedKeys(props) {
				child, _ := props[childName].(map[string]any)
				if child == nil {
					child = Schema{}
				}
				child = ResolveRef(child, root)
				writeFieldInstructions(b, root, childName, child, nested[childName], indent+"  ")
			}
		} else {
			fmt.Fprintf(b, "%s- `%s/` (directory, %s)%s: numbered files `0000.txt`, `0001.txt`, ... one %s per file\n",
				indent, name, marker, desc, fieldType(items))
		}
	default:
		fmt.Fprintf(b, "%s- `%s.txt` (%s, %s)%s\n", indent, name, fieldType(field), marker, desc)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
