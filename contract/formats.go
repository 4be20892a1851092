package contract

// Output formats accepted by --output-format.
const (
	// FormatText is plain text output (the CLI default).
	FormatText = "text"

	// FormatJSON is structured JSON output.
	FormatJSON = "json"

	// FormatStreamJSON is newline-delimited JSON for streaming.
	FormatStreamJSON = "stream-json"
)
