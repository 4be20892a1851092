package contract

// File names used by Claude Code configuration.
const (
	// FileSettings is the settings file name.
	FileSettings = "settings.json"

	// FileSettingsLocal is the local (gitignored) settings file name.
	FileSettingsLocal = "settings.local.json"

	// FileUserProviders is the user-scope provider presets file name.
	FileUserProviders = "providers.yaml"

	// FileProjectProviders is the project-scope provider presets file name.
	FileProjectProviders = "claude_providers.yaml"

	// FileClaudeMD is the project instructions file name.
	FileClaudeMD = "CLAUDE.md"
)

// Directory names used by Claude Code.
const (
	// DirClaude is the main Claude configuration directory.
	DirClaude = ".claude"

	// DirProjects is the projects directory for session transcripts.
	DirProjects = "projects"
)

// Scratch-artifact prefixes used by the adapter when generating temporary
// paths. Kept here so transcript tooling can recognize adapter artifacts.
const (
	// PrefixStructuredOutput prefixes structured-output capture files.
	PrefixStructuredOutput = "claude_structured_output"

	// PrefixUnstructuredOutput prefixes raw-output capture files.
	PrefixUnstructuredOutput = "claude_unstructured_output"

	// PrefixDataStructure prefixes per-run field-assembly directories.
	PrefixDataStructure = "claude_data_structure"
)
