package unitview

import (
	"errors"
	"fmt"
)

// Common errors returned by unitview operations
var (
	// ErrDecode indicates the listing output was not parseable JSON
	ErrDecode = errors.New("unitview: decoding listing")

	// ErrSchema indicates the parsed listing had an unexpected shape
	ErrSchema = errors.New("unitview: unexpected output format")

	// ErrRefreshInFlight indicates a refresh was requested while another
	// listing was still outstanding
	ErrRefreshInFlight = errors.New("unitview: refresh already in flight")

	// ErrUnsupportedAction indicates an action the dispatcher cannot issue
	ErrUnsupportedAction = errors.New("unitview: unsupported action")
)

// ExitError reports a systemctl invocation that ran but exited non-zero.
// Its message is the captured standard error text, which is the only
// diagnostic systemctl provides.
type ExitError struct {
	// Stderr is the captured standard error output, trimmed
	Stderr string
}

// Error returns the captured stderr, or a generic message when the command
// produced none.
func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return "command failed with no error output"
	}
	return e.Stderr
}

// OpError represents an error from a systemctl operation
type OpError struct {
	// Action is the operation that failed
	Action Action
	// Unit is the target unit name, empty for listing operations
	Unit string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("systemctl %s: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("systemctl %s %q: %v", e.Action, e.Unit, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}
