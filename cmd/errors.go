package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError indicates the command was invoked with the wrong number of
// positional arguments.
type UsageError struct {
	// Got is the number of positional arguments supplied.
	Got int
}

// Error returns the argument count problem.
func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 arguments (profile, cluster), got %d", e.Got)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

// exactArgs is cobra.ExactArgs reporting a *UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Got: len(args)}
		}
		return nil
	}
}
