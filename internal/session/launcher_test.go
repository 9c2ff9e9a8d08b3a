package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecsshell/internal/console"
)

type recordingPrinter struct {
	fields  []console.Field
	dim     []string
	notices []string
	errors  []string
	rules   int
}

func (p *recordingPrinter) ConnectionPanel(fields ...console.Field) { p.fields = fields }
func (p *recordingPrinter) Dim(format string, args ...interface{}) {
	p.dim = append(p.dim, fmt.Sprintf(format, args...))
}
func (p *recordingPrinter) Rule() { p.rules++ }
func (p *recordingPrinter) Notice(format string, args ...interface{}) {
	p.notices = append(p.notices, fmt.Sprintf(format, args...))
}
func (p *recordingPrinter) Error(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func testTarget() Target {
	return Target{Profile: "dev", Cluster: "prod", TaskID: "abc123"}
}

func TestCommand_Default(t *testing.T) {
	l := NewLauncher(&recordingPrinter{}, Options{})

	got := l.Command(testTarget())

	assert.Equal(t, []string{
		"aws", "ecs", "execute-command",
		"--profile", "dev",
		"--interactive",
		"--command", "sh",
		"--cluster", "prod",
		"--task", "abc123",
	}, got)
}

func TestCommand_Overrides(t *testing.T) {
	l := NewLauncher(&recordingPrinter{}, Options{
		Binary:       "/usr/local/bin/aws",
		ShellCommand: "/bin/bash",
		Container:    "app",
		Region:       "eu-west-1",
		EndpointURL:  "http://localhost:4566",
	})

	got := l.Command(testTarget())

	assert.Equal(t, "/usr/local/bin/aws", got[0])
	assert.Contains(t, strings.Join(got, " "), "--command /bin/bash")
	assert.Contains(t, strings.Join(got, " "), "--container app")
	assert.Contains(t, strings.Join(got, " "), "--region eu-west-1")
	assert.Contains(t, strings.Join(got, " "), "--endpoint-url http://localhost:4566")
}

func TestCommand_TargetContainerWins(t *testing.T) {
	l := NewLauncher(&recordingPrinter{}, Options{Container: "app"})
	target := testTarget()
	target.Container = "envoy"

	got := strings.Join(l.Command(target), " ")

	assert.Contains(t, got, "--container envoy")
	assert.NotContains(t, got, "--container app")
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-aws")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestLaunch_EchoesCommandAndRunsChild(t *testing.T) {
	requireUnix(t)
	var stdout bytes.Buffer
	printer := &recordingPrinter{}
	l := NewLauncher(printer, Options{
		Binary: writeScript(t, `echo "$@"`),
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	})

	err := l.Launch(context.Background(), testTarget())

	require.NoError(t, err)
	assert.Equal(t, []console.Field{
		{Label: "Profile", Value: "dev"},
		{Label: "Cluster", Value: "prod"},
		{Label: "Task", Value: "abc123"},
	}, printer.fields)
	require.Len(t, printer.dim, 1)
	assert.True(t, strings.HasPrefix(printer.dim[0], "Command: "))
	assert.Contains(t, printer.dim[0], "ecs execute-command --profile dev --interactive --command sh --cluster prod --task abc123")
	assert.Equal(t, 1, printer.rules)
	assert.Equal(t, "ecs execute-command --profile dev --interactive --command sh --cluster prod --task abc123\n", stdout.String())
}

func TestLaunch_NonZeroExitIsNotAnError(t *testing.T) {
	requireUnix(t)
	printer := &recordingPrinter{}
	l := NewLauncher(printer, Options{
		Binary: writeScript(t, "exit 130"),
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	err := l.Launch(context.Background(), testTarget())

	assert.NoError(t, err)
	assert.Empty(t, printer.errors)
}

func TestLaunch_MissingBinary(t *testing.T) {
	printer := &recordingPrinter{}
	l := NewLauncher(printer, Options{
		Binary: filepath.Join(t.TempDir(), "does-not-exist"),
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	err := l.Launch(context.Background(), testTarget())

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.True(t, errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist))
	require.Len(t, printer.errors, 1)
	assert.Contains(t, printer.errors[0], "Error executing command")
}

func TestLaunch_ContextCancelReapsChild(t *testing.T) {
	requireUnix(t)
	l := NewLauncher(&recordingPrinter{}, Options{
		Binary: writeScript(t, "exec sleep 30"),
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.Launch(ctx, testTarget())

	assert.Less(t, time.Since(start), 10*time.Second)
	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLaunchError(t *testing.T) {
	reason := errors.New("boom")
	err := &LaunchError{Command: []string{"aws", "ecs"}, Reason: reason}

	assert.Contains(t, err.Error(), "aws ecs")
	assert.ErrorIs(t, err, reason)
	assert.True(t, errors.Is(fmt.Errorf("wrap: %w", err), &LaunchError{}))
}
