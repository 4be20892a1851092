// Package provider holds the configuration surface for driving the Claude
// Code CLI as a model backend.
//
// A Provider is a stateless value holder for default call settings. It handles
// ONLY infrastructure concerns: locating the CLI binary and stamping out Model
// values via the registry. Model configuration, tools, and prompts belong to
// the orchestration layer; provider presets are part of the model string.
//
//	p := provider.NewProvider(provider.Settings{"timeout_seconds": 600})
//	merged := p.Settings(provider.Settings{"verbose": true})
//	// merged["timeout_seconds"] == 600, p unchanged
package provider

import (
	"fmt"
	"time"
)

// Settings is a flat mapping of option name to value.
//
// One key is validated and defaulted: "timeout_seconds". Everything else
// passes through opaquely to whatever consumes the merged settings.
type Settings map[string]any

// Well-known settings keys.
const (
	// KeyTimeoutSeconds is the CLI execution timeout in seconds.
	KeyTimeoutSeconds = "timeout_seconds"

	// KeyWorkingDirectory is the working directory for CLI file operations.
	KeyWorkingDirectory = "working_directory"

	// KeyModel is the concrete model name passed to the CLI.
	KeyModel = "model"

	// KeyCLIPath is the path to the claude binary.
	KeyCLIPath = "claude_cli_path"

	// KeyAppendSystemPrompt is appended to the system prompt without replacing it.
	KeyAppendSystemPrompt = "append_system_prompt"

	// KeyVerbose enables verbose CLI output.
	KeyVerbose = "verbose"

	// KeySkipPermissions bypasses permission prompts.
	KeySkipPermissions = "dangerously_skip_permissions"

	// KeyDebugSavePrompts saves prompts and responses to a debug directory.
	// Accepts true (default directory) or a directory path string.
	KeyDebugSavePrompts = "debug_save_prompts"

	// KeyProviderEnv carries preset environment variables for the subprocess.
	KeyProviderEnv = "__provider_env"
)

// DefaultTimeoutSeconds is the CLI execution timeout applied when the
// settings carry no explicit value. 900 seconds = 15 minutes: long enough
// for multi-turn tool use, short enough to catch a hung CLI.
const DefaultTimeoutSeconds = 900

// Clone returns a shallow copy of the settings.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new Settings equal to s with every key in overrides
// replacing the stored value. Neither input is modified.
func (s Settings) Merge(overrides Settings) Settings {
	out := s.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// String retrieves a string value, returning defaultVal if absent or mistyped.
func (s Settings) String(key, defaultVal string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return defaultVal
}

// Bool retrieves a bool value, returning defaultVal if absent or mistyped.
func (s Settings) Bool(key string, defaultVal bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return defaultVal
}

// Int retrieves an int value, returning defaultVal if absent.
// Handles int, int64, and float64 (the JSON number type).
func (s Settings) Int(key string, defaultVal int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultVal
}

// StringSlice retrieves a string slice value, returning nil if absent.
// Handles both []string and []any (from JSON unmarshaling).
func (s Settings) StringSlice(key string) []string {
	switch v := s[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Provider holds default call settings for the Claude Code backend.
//
// The stored settings are never mutated after construction; Settings returns
// a fresh merged mapping on every call, so a Provider is safe for concurrent
// use without coordination.
type Provider struct {
	settings Settings
	cliPath  string
}

// ProviderOption configures a Provider at construction.
type ProviderOption func(*Provider)

// WithCLIPath sets the path to the claude CLI binary.
// By default the binary is resolved from PATH.
func WithCLIPath(path string) ProviderOption {
	return func(p *Provider) { p.cliPath = path }
}

// NewProvider creates a Provider with the given initial settings.
// A nil initial mapping is valid. If the mapping carries no
// "timeout_seconds" key, DefaultTimeoutSeconds is stored.
func NewProvider(initial Settings, opts ...ProviderOption) *Provider {
	p := &Provider{settings: initial.Clone()}
	if _, ok := p.settings[KeyTimeoutSeconds]; !ok {
		p.settings[KeyTimeoutSeconds] = DefaultTimeoutSeconds
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cliPath != "" {
		p.settings[KeyCLIPath] = p.cliPath
	}
	return p
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "claude-code"
}

// CLIPath returns the configured CLI binary path, or "" when the binary
// is resolved from PATH.
func (p *Provider) CLIPath() string {
	return p.cliPath
}

// TimeoutSeconds returns the stored execution timeout in seconds.
func (p *Provider) TimeoutSeconds() int {
	return p.settings.Int(KeyTimeoutSeconds, DefaultTimeoutSeconds)
}

// Timeout returns the stored execution timeout as a duration.
func (p *Provider) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds()) * time.Second
}

// Settings returns a new mapping equal to the stored settings with every
// key in overrides replacing the stored value. Keys present only in
// overrides are added; the stored defaults are never mutated. Unknown keys
// pass through opaquely.
func (p *Provider) Settings(overrides Settings) Settings {
	return p.settings.Merge(overrides)
}

// CreateModel creates a Model for the given alias with no preset.
func (p *Provider) CreateModel(alias string) *Model {
	return newModel(alias, "", p.cliPath)
}

// CreateModelWithPreset creates a Model routed through a provider preset
// (e.g. "deepseek", "kimi").
func (p *Provider) CreateModelWithPreset(alias, presetID string) *Model {
	return newModel(alias, presetID, p.cliPath)
}

// String implements fmt.Stringer.
func (p *Provider) String() string {
	return fmt.Sprintf("Provider(cli_path=%q)", p.cliPath)
}
