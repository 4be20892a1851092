package extract

import (
	"testing"
)

func TestJSONFromFencedBlock(t *testing.T) {
	text := "Here is the result:\n\n```json\n{\"name\": \"test\", \"n\": 3}\n```\n\nDone."

	raw, ok := JSON(text)
	if !ok {
		t.Fatal("JSON() found nothing")
	}
	if raw != `{"name": "test", "n": 3}` {
		t.Errorf("JSON() = %q", raw)
	}
}

func TestJSONFromUnlabeledBlock(t *testing.T) {
	text := "```\n{\"ok\": true}\n```"

	obj, ok := JSONObject(text)
	if !ok {
		t.Fatal("JSONObject() found nothing")
	}
	if obj["ok"] != true {
		t.Errorf("obj = %v", obj)
	}
}

func TestJSONEmbeddedInProse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"object mid sentence", `The answer is {"x": 1} as shown.`, true},
		{"array", `Results: [1, 2, 3] in order.`, true},
		{"nested braces in strings", `{"note": "use {curly} braces", "n": 1}`, true},
		{"unbalanced", `broken {"x": `, false},
		{"no json", "nothing to see here", false},
		{"braces but not json", "set {x} to {y}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := JSON(tt.text)
			if ok != tt.want {
				t.Errorf("JSON(%q) found=%v, want %v", tt.text, ok, tt.want)
			}
		})
	}
}

func TestJSONArray(t *testing.T) {
	arr, ok := JSONArray("items: [\"a\", \"b\"]")
	if !ok {
		t.Fatal("JSONArray() found nothing")
	}
	if len(arr) != 2 || arr[0] != "a" {
		t.Errorf("arr = %v", arr)
	}
}

func TestCodeBlocks(t *testing.T) {
	text := "```go\npackage main\n```\n\ntext\n\n```python\nprint(1)\n```"

	blocks := CodeBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Language != "go" || blocks[1].Language != "python" {
		t.Errorf("languages = %q, %q", blocks[0].Language, blocks[1].Language)
	}

	code, ok := Code(text, "python")
	if !ok || code != "print(1)" {
		t.Errorf("Code(python) = %q, %v", code, ok)
	}
	if _, ok := Code(text, "rust"); ok {
		t.Error("Code(rust) found a block")
	}
	first, ok := Code(text, "")
	if !ok || first != "package main" {
		t.Errorf("Code(\"\") = %q", first)
	}
}

func TestStripCodeBlocks(t *testing.T) {
	text := "before\n```go\ncode\n```\nafter"

	stripped := StripCodeBlocks(text)
	if stripped != "before\n\nafter" {
		t.Errorf("StripCodeBlocks() = %q", stripped)
	}
}

func TestYAML(t *testing.T) {
	text := "```yaml\nname: test\ncount: 3\n```"

	data, ok := YAML(text)
	if !ok {
		t.Fatal("YAML() found nothing")
	}
	if data["name"] != "test" || data["count"] != 3 {
		t.Errorf("data = %v", data)
	}

	if _, ok := YAML("no yaml here"); ok {
		t.Error("YAML() found a block in plain text")
	}
}
