// Package claudecode adapts the Claude Code CLI into a model backend for
// agent orchestration. Each subpackage can be used independently:
//
//   - provider: provider registration, settings merge, and model strings
//   - presets: named endpoint configurations with environment templates
//   - events: stream-json event decoding and response translation
//   - events/jsonl: line-oriented event file reading and tailing
//   - structured: schema-constrained output via capture files and file trees
//   - extract: JSON, YAML, and code block salvage from response text
//   - contract: pinned CLI flags, event names, formats, and paths
//   - sdk: compatibility shim over the bundled agent SDK surface
//   - cost: token usage and spend tracking
//   - temppath: collision-free temp file and directory naming
//   - debugsave: best-effort prompt/response artifacts for debugging
//   - logutil: section separators for run logs
//
// # Quick Start
//
// Create a provider and resolve a model:
//
//	import "github.com/modelkit/claudecode/provider"
//	p, _ := provider.NewProvider(provider.Settings{"model": "sonnet"})
//	m, _ := p.CreateModel("sonnet")
//	settings := m.BuildSettings(provider.Settings{"timeout_seconds": 120})
//
// Decode a stream-json transcript and translate it:
//
//	import "github.com/modelkit/claudecode/events"
//	msgs, _ := events.DecodeAll(lines)
//	resp, _ := events.Translate(msgs)
//
// Settings merges are pure: every merge returns a new map and never
// mutates its inputs, so a provider's configuration is stable across
// concurrent model runs.
package claudecode
