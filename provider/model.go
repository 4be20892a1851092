package provider

import (
	"fmt"
	"strings"

	"github.com/modelkit/claudecode/presets"
)

// ModelScheme is the prefix identifying model strings handled by this
// adapter, as in "claude-code:sonnet" or "claude-code:deepseek:sonnet".
const ModelScheme = "claude-code"

// Model is a single configured model: an alias or concrete model name,
// optionally routed through a provider preset. It is an immutable value;
// every derived settings mapping is a fresh copy.
type Model struct {
	alias    string
	presetID string
	cliPath  string

	actualName string
	presetEnv  map[string]string
}

func newModel(alias, presetID, cliPath string) *Model {
	m := &Model{
		alias:      alias,
		presetID:   presetID,
		cliPath:    cliPath,
		actualName: alias,
	}
	if presetID != "" {
		if preset, ok := presets.Lookup(presetID); ok {
			m.actualName = preset.ModelName(alias)
			m.presetEnv = preset.EnvironmentVariables("", nil)
		}
	}
	return m
}

// Name returns the full model identifier, including the scheme and any
// preset segment.
func (m *Model) Name() string {
	if m.presetID != "" {
		return fmt.Sprintf("%s:%s:%s", ModelScheme, m.presetID, m.alias)
	}
	return fmt.Sprintf("%s:%s", ModelScheme, m.alias)
}

// System returns the system identifier for usage attribution.
func (m *Model) System() string {
	return ModelScheme
}

// Alias returns the model alias as given (e.g. "sonnet").
func (m *Model) Alias() string {
	return m.alias
}

// PresetID returns the provider preset id, or "" when routed to Anthropic.
func (m *Model) PresetID() string {
	return m.presetID
}

// BuildSettings merges all settings sources into the mapping consumed by
// the CLI invocation path.
//
// Merge order (later overrides earlier):
//  1. Model identity and preset environment
//  2. Fixed execution defaults
//  3. Run-time overrides
//
// The returned mapping is freshly allocated on every call.
func (m *Model) BuildSettings(runtime Settings) Settings {
	settings := Settings{
		KeyModel: m.actualName,
	}
	if m.cliPath != "" {
		settings[KeyCLIPath] = m.cliPath
	}
	if len(m.presetEnv) > 0 {
		env := make(map[string]string, len(m.presetEnv))
		for k, v := range m.presetEnv {
			env[k] = v
		}
		settings[KeyProviderEnv] = env
	}

	// Execution defaults. Full filesystem access is assumed: the adapter
	// targets unattended agent runs, not interactive sessions.
	settings[KeySkipPermissions] = true
	settings[KeyTimeoutSeconds] = DefaultTimeoutSeconds

	return settings.Merge(runtime)
}

// ParseModelString splits a "claude-code:[preset:]alias" string into its
// preset id and alias. The preset segment is recognized only when it names
// a known preset, so concrete model names containing colons stay intact.
func ParseModelString(modelString string) (presetID, alias string, err error) {
	rest, ok := strings.CutPrefix(modelString, ModelScheme+":")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidModelString, modelString)
	}
	if rest == "" {
		return "", "", fmt.Errorf("%w: %q has empty model name", ErrInvalidModelString, modelString)
	}

	presetID, alias = splitPresetAlias(rest)
	return presetID, alias, nil
}

// splitPresetAlias splits "preset:alias" when the first segment names a
// known preset; otherwise the whole string is the alias. Concrete model
// names containing colons therefore stay intact.
func splitPresetAlias(rest string) (presetID, alias string) {
	if head, tail, found := strings.Cut(rest, ":"); found {
		if _, known := presets.Lookup(head); known {
			return head, tail
		}
	}
	return "", rest
}

// NewModelFromString creates a Model from a full model string using the
// given provider's CLI path.
func NewModelFromString(modelString string, p *Provider) (*Model, error) {
	presetID, alias, err := ParseModelString(modelString)
	if err != nil {
		return nil, err
	}
	if presetID != "" {
		return p.CreateModelWithPreset(alias, presetID), nil
	}
	return p.CreateModel(alias), nil
}
