package session

import (
	"fmt"
	"strings"
)

// LaunchError indicates the external execute-command process could not be
// started or was terminated abnormally.
type LaunchError struct {
	// Command is the full command line that was attempted.
	Command []string
	// Reason is the underlying error.
	Reason error
}

// Error returns the command and cause.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to run %q: %v", strings.Join(e.Command, " "), e.Reason)
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *LaunchError) Is(target error) bool {
	_, ok := target.(*LaunchError)
	return ok
}
