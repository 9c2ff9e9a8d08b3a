package session

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"ecsshell/internal/console"
	"ecsshell/pkg/logging"
)

const (
	subsystem = "SessionLauncher"

	// DefaultBinary is the AWS CLI executable.
	DefaultBinary = "aws"
	// DefaultShellCommand is the command started inside the container.
	DefaultShellCommand = "sh"
)

// Printer is the part of the console the launcher writes to.
type Printer interface {
	ConnectionPanel(fields ...console.Field)
	Dim(format string, args ...interface{})
	Rule()
	Notice(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Options configures the execute-command invocation.
type Options struct {
	// Binary is the AWS CLI executable. Defaults to DefaultBinary.
	Binary string
	// ShellCommand is run inside the container. Defaults to DefaultShellCommand.
	ShellCommand string
	// Container targets a specific container. Empty leaves the choice to ECS.
	Container string
	// Region and EndpointURL are forwarded to the CLI when set.
	Region      string
	EndpointURL string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Target identifies the task to connect to.
type Target struct {
	Profile string
	Cluster string
	TaskID  string
	// Container overrides Options.Container for this launch when set.
	Container string
}

// Launcher runs `aws ecs execute-command` with the terminal attached.
type Launcher struct {
	opts    Options
	printer Printer
}

// NewLauncher creates a Launcher. Unset stdio defaults to the process's own.
func NewLauncher(printer Printer, opts Options) *Launcher {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.ShellCommand == "" {
		opts.ShellCommand = DefaultShellCommand
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Launcher{opts: opts, printer: printer}
}

// Command returns the full command line, binary first, for target.
func (l *Launcher) Command(target Target) []string {
	container := l.container(target)

	args := []string{
		"ecs", "execute-command",
		"--profile", target.Profile,
		"--interactive",
		"--command", l.opts.ShellCommand,
		"--cluster", target.Cluster,
		"--task", target.TaskID,
	}
	if container != "" {
		args = append(args, "--container", container)
	}
	if l.opts.Region != "" {
		args = append(args, "--region", l.opts.Region)
	}
	if l.opts.EndpointURL != "" {
		args = append(args, "--endpoint-url", l.opts.EndpointURL)
	}

	return append([]string{l.opts.Binary}, args...)
}

func (l *Launcher) container(target Target) string {
	if target.Container != "" {
		return target.Container
	}
	return l.opts.Container
}

// Launch prints the connection panel, runs the interactive session and
// blocks until it ends. A non-zero exit of the remote shell and an operator
// interrupt are not errors. Failure to start the process, or cancellation
// of ctx, is returned as *LaunchError.
func (l *Launcher) Launch(ctx context.Context, target Target) error {
	command := l.Command(target)

	fields := []console.Field{
		{Label: "Profile", Value: target.Profile},
		{Label: "Cluster", Value: target.Cluster},
		{Label: "Task", Value: target.TaskID},
	}
	if c := l.container(target); c != "" {
		fields = append(fields, console.Field{Label: "Container", Value: c})
	}
	l.printer.ConnectionPanel(fields...)
	l.printer.Dim("Command: %s", strings.Join(command, " "))
	l.printer.Rule()

	interrupted, err := l.run(ctx, command)
	if interrupted {
		l.printer.Notice("\nConnection interrupted by user")
		return nil
	}
	if err != nil {
		l.printer.Error("Error executing command: %v", err)
		return err
	}
	return nil
}

// run starts the child and waits for it. Interrupt and termination signals
// received while the child runs are intercepted so the parent outlives the
// child and can reap it.
func (l *Launcher) run(ctx context.Context, command []string) (bool, error) {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = l.opts.Stdin
	cmd.Stdout = l.opts.Stdout
	cmd.Stderr = l.opts.Stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logging.Debug(subsystem, "starting %s", strings.Join(command, " "))
	if err := cmd.Start(); err != nil {
		return false, &LaunchError{Command: command, Reason: err}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	interrupted := false
	for {
		select {
		case sig := <-sigCh:
			interrupted = true
			logging.Debug(subsystem, "received %s during session", sig)
			// SIGINT from the terminal already reaches the child through the
			// foreground process group; SIGTERM is only sent to us.
			if sig == syscall.SIGTERM {
				_ = cmd.Process.Signal(sig)
			}
		case err := <-done:
			return interrupted, l.waitResult(ctx, command, err)
		}
	}
}

func (l *Launcher) waitResult(ctx context.Context, command []string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &LaunchError{Command: command, Reason: ctxErr}
	}
	if err == nil {
		logging.Debug(subsystem, "session ended")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Debug(subsystem, "session ended with exit code %d", exitErr.ExitCode())
		return nil
	}
	return &LaunchError{Command: command, Reason: err}
}
