// Package contract pins the interface details of the Claude Code CLI that
// this adapter depends on: stream event types, output formats, flag names,
// configuration file paths, and version detection.
//
// The CLI's interface strings are volatile between releases. Centralizing
// them here means a CLI change touches one package, and the rest of the
// module speaks in constants.
//
// The TestedCLIVersion constant records which CLI version these strings
// were verified against. CheckVersion detects the installed CLI and logs a
// warning when it is newer than the tested version:
//
//	v := contract.CheckVersion("claude")
//
// Sources:
//   - claude --help output
//   - Official TypeScript/Python SDK documentation
//   - Official CLI reference
package contract
