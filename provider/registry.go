package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ModelFactory creates a Model for a parsed model string.
// Each scheme registers its own factory function.
type ModelFactory func(presetID, alias string, p *Provider) (*Model, error)

// registry stores registered model-string schemes.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]ModelFactory)
)

func init() {
	Register(ModelScheme, func(presetID, alias string, p *Provider) (*Model, error) {
		if presetID != "" {
			return p.CreateModelWithPreset(alias, presetID), nil
		}
		return p.CreateModel(alias), nil
	})
}

// Register adds a model-string scheme to the registry.
// Panics if the scheme is already registered.
func Register(scheme string, factory ModelFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[scheme]; exists {
		panic(fmt.Sprintf("scheme %q already registered", scheme))
	}
	registry[scheme] = factory
}

// NewModel resolves a full model string ("claude-code:deepseek:sonnet")
// through the registry. Returns ErrUnknownScheme for unregistered schemes.
func NewModel(modelString string, p *Provider) (*Model, error) {
	scheme, rest, found := strings.Cut(modelString, ":")
	if !found || rest == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModelString, modelString)
	}

	registryMu.RLock()
	factory, ok := registry[scheme]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}

	presetID, alias := splitPresetAlias(rest)
	return factory(presetID, alias, p)
}

// Schemes returns the registered scheme names, sorted for consistent
// ordering.
func Schemes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a scheme is registered.
func IsRegistered(scheme string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[scheme]
	return ok
}
