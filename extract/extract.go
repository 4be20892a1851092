// Package extract pulls machine-readable payloads out of CLI response
// text. The CLI is asked for bare JSON but often wraps it in prose or
// markdown fences; these helpers salvage the payload.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	fenceRegex = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")
)

// CodeBlock is a fenced markdown code block.
type CodeBlock struct {
	// Language is the specifier after the opening fence, possibly empty.
	Language string

	// Content is the text inside the fences.
	Content string
}

// CodeBlocks returns all fenced code blocks in order of appearance.
func CodeBlocks(text string) []CodeBlock {
	matches := fenceRegex.FindAllStringSubmatch(text, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, CodeBlock{Language: m[1], Content: strings.TrimSpace(m[2])})
	}
	return blocks
}

// Code returns the first code block matching language, or the first block
// of any language when language is empty.
func Code(text, language string) (string, bool) {
	for _, block := range CodeBlocks(text) {
		if language == "" || block.Language == language {
			return block.Content, true
		}
	}
	return "", false
}

// StripCodeBlocks removes all fenced code blocks from the text.
func StripCodeBlocks(text string) string {
	return fenceRegex.ReplaceAllString(text, "")
}

// JSON finds the first JSON object or array in the text and returns its
// raw form. Fenced json blocks win; otherwise the text is scanned for a
// balanced object or array that parses.
func JSON(text string) (string, bool) {
	for _, block := range CodeBlocks(text) {
		if block.Language != "json" && block.Language != "" {
			continue
		}
		if json.Valid([]byte(block.Content)) {
			return block.Content, true
		}
	}
	return scanBalanced(text)
}

// JSONObject finds and parses the first JSON object in the text.
func JSONObject(text string) (map[string]any, bool) {
	raw, ok := JSON(text)
	if !ok {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

// JSONArray finds and parses the first JSON array in the text.
func JSONArray(text string) ([]any, bool) {
	raw, ok := JSON(text)
	if !ok {
		return nil, false
	}
	var out []any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

// YAML parses the first yaml code block into a map.
func YAML(text string) (map[string]any, bool) {
	for _, block := range CodeBlocks(text) {
		if block.Language != "yaml" && block.Language != "yml" {
			continue
		}
		var out map[string]any
		if err := yaml.Unmarshal([]byte(block.Content), &out); err == nil {
			return out, true
		}
	}
	return nil, false
}

// scanBalanced walks the text looking for a balanced {...} or [...] span
// that parses as JSON. String literals and escapes are honored so braces
// inside strings do not end the span.
func scanBalanced(text string) (string, bool) {
	for start := 0; start < len(text); start++ {
		open := text[start]
		if open != '{' && open != '[' {
			continue
		}
		if end, ok := matchSpan(text, start); ok {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, true
			}
		}
	}
	return "", false
}

func matchSpan(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
