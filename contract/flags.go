package contract

// CLI flag names consumed by this adapter's settings surface.
// These are the exact flag names as used by the claude CLI binary.
const (
	// Core flags
	FlagPrint        = "--print"         // -p, run in non-interactive mode
	FlagOutputFormat = "--output-format" // text, json, stream-json
	FlagVerbose      = "--verbose"

	// Model flags
	FlagModel         = "--model"
	FlagFallbackModel = "--fallback-model"

	// Session flags
	FlagSessionID = "--session-id"
	FlagContinue  = "--continue"
	FlagResume    = "--resume"

	// Tool flags (the CLI accepts both camelCase and kebab-case)
	FlagAllowedTools    = "--allowedTools"
	FlagDisallowedTools = "--disallowedTools"

	// Prompt flags
	FlagSystemPrompt       = "--system-prompt"
	FlagAppendSystemPrompt = "--append-system-prompt"

	// Permission flags
	FlagDangerouslySkipPermissions = "--dangerously-skip-permissions"
	FlagPermissionMode             = "--permission-mode"

	// Directory flags
	FlagAddDir = "--add-dir"

	// Limit flags
	FlagMaxTurns = "--max-turns"

	// Schema flags
	FlagJSONSchema = "--json-schema"
)

// PermissionMode values accepted by --permission-mode.
const (
	PermissionDefault           = "default"
	PermissionAcceptEdits       = "acceptEdits"
	PermissionBypassPermissions = "bypassPermissions"
	PermissionPlan              = "plan"
)
