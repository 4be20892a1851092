// Package presets manages provider presets: named configurations that route
// the Claude Code CLI to alternate Anthropic-compatible backends (DeepSeek,
// Kimi, GLM, aggregators) by way of environment variables.
//
// Presets resolve in three layers, later overriding earlier per preset id:
//
//  1. Built-in presets compiled into the package
//  2. User presets (~/.claude/providers.yaml|toml)
//  3. Project presets (./claude_providers.yaml|toml)
package presets

import (
	"log/slog"
	"os"
	"regexp"
	"sort"
)

// Category classifies a preset's provider.
type Category string

const (
	CategoryOfficial   Category = "official"
	CategoryCNOfficial Category = "cn_official"
	CategoryAggregator Category = "aggregator"
	CategoryThirdParty Category = "third_party"
)

// DefaultAPIKeyField is the environment variable used for the provider API
// key when a preset does not name its own.
const DefaultAPIKeyField = "ANTHROPIC_AUTH_TOKEN"

// Preset describes a provider preset: metadata plus the runtime environment
// needed to point the CLI at the provider's endpoint.
type Preset struct {
	// ID is the unique preset identifier (e.g. "deepseek").
	ID string `json:"preset_id" yaml:"preset_id" toml:"preset_id"`

	// Name is the human-readable display name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// WebsiteURL is the provider website.
	WebsiteURL string `json:"website_url" yaml:"website_url" toml:"website_url"`

	// APIKeyURL is where users obtain an API key, if different from the website.
	APIKeyURL string `json:"api_key_url,omitempty" yaml:"api_key_url,omitempty" toml:"api_key_url"`

	// APIKeyField is the environment variable carrying the API key.
	// Defaults to DefaultAPIKeyField.
	APIKeyField string `json:"api_key_field,omitempty" yaml:"api_key_field,omitempty" toml:"api_key_field"`

	// Category is the provider category.
	Category Category `json:"category,omitempty" yaml:"category,omitempty" toml:"category"`

	// Official marks built-in official providers.
	Official bool `json:"is_official,omitempty" yaml:"is_official,omitempty" toml:"is_official"`

	// Env maps environment variable names to values. String values may
	// contain ${VAR} placeholders resolved at build time.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty" toml:"env"`

	// Models maps model aliases ("sonnet", "haiku") to provider model names.
	Models map[string]string `json:"models,omitempty" yaml:"models,omitempty" toml:"models"`

	// EndpointCandidates lists alternative endpoint URLs to try.
	EndpointCandidates []string `json:"endpoint_candidates,omitempty" yaml:"endpoint_candidates,omitempty" toml:"endpoint_candidates"`
}

// ModelName resolves an alias to the preset's concrete model name.
// The alias "custom" maps to the preset's "default" entry when present.
// Unmapped aliases pass through unchanged.
func (p *Preset) ModelName(alias string) string {
	if alias == "custom" {
		if name, ok := p.Models["default"]; ok {
			return name
		}
		return alias
	}
	if name, ok := p.Models[alias]; ok {
		return name
	}
	return alias
}

var templateVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// EnvironmentVariables builds the environment required by this preset.
//
// ${VAR} placeholders in env values are substituted from templateVars first,
// then from the process environment; unresolved placeholders are kept as-is
// and logged. When apiKey is non-empty it is assigned to the preset's API
// key field.
func (p *Preset) EnvironmentVariables(apiKey string, templateVars map[string]string) map[string]string {
	env := make(map[string]string, len(p.Env)+1)
	for key, value := range p.Env {
		env[key] = p.substitute(value, templateVars)
	}

	if apiKey != "" {
		field := p.APIKeyField
		if field == "" {
			field = DefaultAPIKeyField
		}
		env[field] = apiKey
	}
	return env
}

func (p *Preset) substitute(value string, templateVars map[string]string) string {
	return templateVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := templateVars[name]; ok {
			return v
		}
		// Empty string is a valid environment value.
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		slog.Warn("template variable not found for preset",
			"variable", name,
			"preset", p.ID,
		)
		return match
	})
}

// Lookup resolves a preset id through all layers.
func Lookup(id string) (*Preset, bool) {
	all := LoadAll("")
	p, ok := all[id]
	return p, ok
}

// LoadAll loads every preset with proper precedence. projectDir defaults to
// the current working directory.
func LoadAll(projectDir string) map[string]*Preset {
	all := make(map[string]*Preset)
	for id, p := range Builtin() {
		all[id] = p
	}
	for id, p := range loadUserPresets() {
		all[id] = p
	}
	for id, p := range loadProjectPresets(projectDir) {
		all[id] = p
	}
	return all
}

// IDs returns all available preset ids, sorted.
func IDs(projectDir string) []string {
	all := LoadAll(projectDir)
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByCategory returns all presets in the given category.
func ByCategory(category Category, projectDir string) []*Preset {
	var out []*Preset
	for _, p := range LoadAll(projectDir) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ComputeEnvironment computes the variables a preset would apply without
// touching the process environment. Variables already present in the
// environment are skipped unless overrideExisting is set.
func ComputeEnvironment(p *Preset, apiKey string, templateVars map[string]string, overrideExisting bool) map[string]string {
	computed := make(map[string]string)
	for key, value := range p.EnvironmentVariables(apiKey, templateVars) {
		if _, exists := os.LookupEnv(key); exists && !overrideExisting {
			slog.Debug("skipping existing environment variable", "key", key, "preset", p.ID)
			continue
		}
		computed[key] = value
	}
	return computed
}
