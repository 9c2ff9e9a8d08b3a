package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ecsshell/internal/awsecs"
	"ecsshell/internal/flow"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Exit codes for the CLI.
const (
	// ExitCodeSuccess indicates a completed session or a graceful cancel.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a usage error, a credential error, or a cluster
	// without services.
	ExitCodeError = 1
)

const usageLine = "Usage: ecs-shell <profile> <cluster>"

// rootCmd is the ecs-shell command. It has no subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ecs-shell <profile> <cluster>",
		Short: "Open an interactive shell in a running ECS task",
		Long: `ecs-shell lists the services of an ECS cluster, lets you pick one and
then one of its running tasks, and opens an interactive shell in it with
"aws ecs execute-command".

The profile is a named AWS CLI profile. Credentials are resolved by the
AWS SDK and the AWS CLI; expired SSO sessions must be renewed with
"aws sso login".`,
		Example: `  ecs-shell dev my-cluster
  ecs-shell --select-container --command /bin/bash prod payments`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, args[0], args[1], opts)
		},
		// Errors are printed by execute so the usage line and already
		// reported failures are handled in one place.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate(`{{printf "ecs-shell version %s\n" .Version}}`)
	addFlags(cmd, opts)
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It is called by
// main.main().
func Execute() {
	if code := execute(rootCmd, os.Stderr); code != ExitCodeSuccess {
		os.Exit(code)
	}
}

// execute runs cmd and prints any error that has not been shown yet.
func execute(cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return ExitCodeSuccess
	}

	var usageErr *UsageError
	var credErr *awsecs.CredentialError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(errOut, text.FgRed.Sprint(usageLine))
	case flow.IsReported(err):
	case errors.As(err, &credErr):
		fmt.Fprintln(errOut, text.FgRed.Sprint(credErr.Error()))
	default:
		fmt.Fprintln(errOut, text.FgRed.Sprintf("Error: %v", err))
	}
	return getExitCode(err)
}

// getExitCode determines the exit code for an error returned by the root
// command. Every failure that reaches here is fatal.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}
