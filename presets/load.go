package presets

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Preset file names. User scope lives under ~/.claude, project scope in the
// project directory itself.
const (
	userPresetsYAML = "providers.yaml"
	userPresetsTOML = "providers.toml"

	projectPresetsYAML = "claude_providers.yaml"
	projectPresetsTOML = "claude_providers.toml"
)

// presetsFile is the on-disk format shared by YAML and TOML preset files.
// A top-level "providers" table maps preset ids to preset definitions.
type presetsFile struct {
	Providers map[string]*Preset `yaml:"providers" toml:"providers"`
}

// loadUserPresets loads presets from the user's ~/.claude directory.
// A missing or unreadable file yields an empty map, never an error.
func loadUserPresets() map[string]*Preset {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return loadPresetsFromDir(filepath.Join(home, ".claude"), userPresetsYAML, userPresetsTOML, "user")
}

// loadProjectPresets loads presets from the project directory, defaulting to
// the current working directory.
func loadProjectPresets(projectDir string) map[string]*Preset {
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		projectDir = cwd
	}
	return loadPresetsFromDir(projectDir, projectPresetsYAML, projectPresetsTOML, "project")
}

// loadPresetsFromDir loads presets from a directory, trying YAML first and
// TOML second. Parse failures are logged and produce an empty map.
func loadPresetsFromDir(dir, yamlName, tomlName, scope string) map[string]*Preset {
	if path := filepath.Join(dir, yamlName); fileExists(path) {
		return loadYAMLPresets(path, scope)
	}
	if path := filepath.Join(dir, tomlName); fileExists(path) {
		return loadTOMLPresets(path, scope)
	}
	return nil
}

func loadYAMLPresets(path, scope string) map[string]*Preset {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read presets file", "path", path, "error", err)
		return nil
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Warn("failed to parse presets file", "path", path, "error", err)
		return nil
	}
	return finishPresets(file.Providers, path, scope)
}

func loadTOMLPresets(path, scope string) map[string]*Preset {
	var file presetsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		slog.Warn("failed to parse presets file", "path", path, "error", err)
		return nil
	}
	return finishPresets(file.Providers, path, scope)
}

// finishPresets stamps each preset with its map key id and defaults.
func finishPresets(providers map[string]*Preset, path, scope string) map[string]*Preset {
	out := make(map[string]*Preset, len(providers))
	for id, p := range providers {
		if p == nil {
			continue
		}
		p.ID = id
		if p.Name == "" {
			p.Name = id
		}
		if p.Category == "" {
			p.Category = CategoryThirdParty
		}
		out[id] = p
		slog.Debug("loaded preset", "scope", scope, "preset", id, "path", path)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
