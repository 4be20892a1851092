package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider operations.
var (
	// ErrInvalidModelString indicates a model string not in
	// "claude-code:[preset:]alias" form.
	ErrInvalidModelString = errors.New("invalid model string")

	// ErrUnknownScheme indicates the requested model scheme is not registered.
	ErrUnknownScheme = errors.New("unknown model scheme")

	// ErrCLINotFound indicates the claude binary was not found in PATH.
	ErrCLINotFound = errors.New("claude CLI not found")

	// ErrSDKUnavailable indicates the external CLI/SDK is not installed;
	// query calls degrade to this error instead of failing at load time.
	ErrSDKUnavailable = errors.New("claude SDK unavailable")

	// ErrTimeout indicates the CLI execution exceeded the configured timeout.
	ErrTimeout = errors.New("execution timed out")

	// ErrStructuredOutput indicates the structured output capture file was
	// missing or did not match the expected shape.
	ErrStructuredOutput = errors.New("structured output invalid")
)

// Error wraps adapter errors with operation context.
type Error struct {
	Op  string // Operation that failed ("settings", "translate", "capture")
	Err error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("claude-code %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new adapter error.
func NewError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
