package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(in string) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, strings.NewReader(in), Options{NoColor: true})
	return c, &out, &errOut
}

func TestHeader(t *testing.T) {
	c, out, _ := newTestConsole("")

	c.Header("dev-admin", "prod")

	got := out.String()
	assert.Contains(t, got, "ECS Interactive Shell")
	assert.Contains(t, got, "Profile: dev-admin | Cluster: prod")
	assert.Contains(t, got, "AWS ECS")
	assert.NotContains(t, got, clearSequence, "screen must not be cleared when output is not a terminal")
}

func TestConnectionPanel(t *testing.T) {
	c, out, _ := newTestConsole("")

	c.ConnectionPanel(
		Field{Label: "Profile", Value: "dev"},
		Field{Label: "Cluster", Value: "prod"},
		Field{Label: "Task", Value: "abc123"},
	)

	got := out.String()
	assert.Contains(t, got, "Connecting to ECS Task")
	assert.Contains(t, got, "Profile: dev")
	assert.Contains(t, got, "Cluster: prod")
	assert.Contains(t, got, "Task: abc123")
}

func TestMessages(t *testing.T) {
	c, out, errOut := newTestConsole("")

	c.Notice("No running tasks found for service '%s'", "checkout-svc")
	c.Selected("service", "billing-svc")
	c.Goodbye()
	c.Dim("Command: %s", "aws ecs execute-command")
	c.Error("Error listing tasks: %v", errors.New("boom"))

	got := out.String()
	assert.Contains(t, got, "No running tasks found for service 'checkout-svc'")
	assert.Contains(t, got, "✓ Selected service: billing-svc")
	assert.Contains(t, got, "Goodbye!")
	assert.Contains(t, got, "Command: aws ecs execute-command")
	assert.Equal(t, "Error listing tasks: boom\n", errOut.String())
}

func TestNoColorLeavesPlainText(t *testing.T) {
	c, out, _ := newTestConsole("")

	c.Notice("plain")

	assert.Equal(t, "plain\n", out.String())
}

func TestRuleUsesDefaultWidth(t *testing.T) {
	c, out, _ := newTestConsole("")

	c.Rule()

	assert.Equal(t, strings.Repeat("─", defaultWidth)+"\n", out.String())
}

func TestStatusIsNoopWithoutTerminal(t *testing.T) {
	c, out, _ := newTestConsole("")

	stop := c.Status("Fetching services...")
	stop()

	assert.Empty(t, out.String())
}

func TestWaitForEnter(t *testing.T) {
	t.Run("returns after newline", func(t *testing.T) {
		c, out, _ := newTestConsole("\n")

		err := c.WaitForEnter("Press Enter to continue...")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Press Enter to continue...")
	})

	t.Run("returns EOF on closed input", func(t *testing.T) {
		c, _, _ := newTestConsole("")

		err := c.WaitForEnter("Press Enter to continue...")

		assert.ErrorIs(t, err, io.EOF)
	})
}
