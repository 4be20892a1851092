// Package sdk is the compatibility shim over the external Claude Code
// CLI/SDK. It re-exports the stream message types and a single Query entry
// point, degrading to placeholders when the CLI is not installed.
//
// Resolution is a one-shot, lazily-initialized probe: the first call to any
// accessor resolves the CLI binary and detects its version, and the result
// is held in an explicit record for the life of the process. Absence of the
// CLI never fails at load time; Query calls then return
// provider.ErrSDKUnavailable and Available reports false.
package sdk

import (
	"context"
	"os/exec"
	"sync"

	"github.com/modelkit/claudecode/contract"
	"github.com/modelkit/claudecode/events"
	"github.com/modelkit/claudecode/provider"
)

// Message types re-exported from the event stream layer.
type (
	Message          = events.Message
	UserMessage      = events.UserMessage
	AssistantMessage = events.AssistantMessage
	ResultMessage    = events.ResultMessage
	SystemMessage    = events.SystemMessage
)

// Vendored-SDK provenance. These track the upstream claude-agent-sdk
// release the shim's type definitions were imported from.
const (
	SDKVersion     = "0.1.8"
	LastImportDate = "2024-01-20"
	NextReviewDate = "2024-04-20"
)

// Info is the fixed metadata record describing the vendored type stubs.
type Info struct {
	Version    string `json:"version"`
	LastImport string `json:"last_import"`
	NextReview string `json:"next_review"`
}

// GetInfo returns the fixed metadata record, regardless of availability.
func GetInfo() Info {
	return Info{
		Version:    SDKVersion,
		LastImport: LastImportDate,
		NextReview: NextReviewDate,
	}
}

// QueryFunc is the single query entry point the shim exposes: one prompt,
// merged settings in, decoded event stream out.
type QueryFunc func(ctx context.Context, prompt string, settings provider.Settings) ([]*events.Message, error)

// state is the resolved shim record. Computed once, read-only afterwards.
type state struct {
	available bool
	cliPath   string
	version   *contract.CLIVersion
}

var (
	resolveOnce sync.Once
	resolved    state

	queryMu sync.RWMutex
	query   QueryFunc = unavailableQuery

	// resolveHook overrides binary resolution in tests.
	resolveHook func() (string, error) = defaultResolve
)

func defaultResolve() (string, error) {
	return exec.LookPath("claude")
}

func resolve() {
	resolveOnce.Do(func() {
		path, err := resolveHook()
		if err != nil {
			// Degraded state: placeholders, no error escapes.
			resolved = state{}
			return
		}
		resolved = state{
			available: true,
			cliPath:   path,
			version:   contract.CheckVersion(path),
		}
	})
}

// unavailableQuery is the placeholder bound when no transport is attached.
// The subprocess protocol is owned by the external SDK layer; hosts attach
// their transport with SetQuery.
func unavailableQuery(ctx context.Context, prompt string, settings provider.Settings) ([]*events.Message, error) {
	return nil, provider.ErrSDKUnavailable
}

// Available reports whether the claude CLI was resolved.
func Available() bool {
	resolve()
	return resolved.available
}

// CLIPath returns the resolved binary path, or "" when unavailable.
func CLIPath() string {
	resolve()
	return resolved.cliPath
}

// CLIVersion returns the detected CLI version, or nil when detection
// failed or the CLI is unavailable.
func CLIVersion() *contract.CLIVersion {
	resolve()
	return resolved.version
}

// Query returns the bound query entry point. It never returns nil: in the
// degraded state the placeholder reports provider.ErrSDKUnavailable.
func Query() QueryFunc {
	queryMu.RLock()
	defer queryMu.RUnlock()
	return query
}

// SetQuery binds the transport's query implementation. Call once at host
// startup, after the transport layer is constructed. Passing nil restores
// the placeholder.
func SetQuery(q QueryFunc) {
	queryMu.Lock()
	defer queryMu.Unlock()
	if q == nil {
		q = unavailableQuery
	}
	query = q
}
