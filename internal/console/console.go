package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	clearSequence = "\033[H\033[2J"
)

// ErrInterrupted is returned by WaitForEnter when the operator presses Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Options controls console rendering.
type Options struct {
	// NoColor disables ANSI colours in notices and panels.
	NoColor bool
}

// Console renders user-facing output. It is not safe for concurrent use.
type Console struct {
	out      io.Writer
	errOut   io.Writer
	in       io.Reader
	opts     Options
	renderer *lipgloss.Renderer
	terminal bool
}

// New creates a Console writing to out and errOut and reading from in.
// Spinners and screen clearing are only used when out is a terminal.
func New(out, errOut io.Writer, in io.Reader, opts Options) *Console {
	renderer := lipgloss.NewRenderer(out)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		out:      out,
		errOut:   errOut,
		in:       in,
		opts:     opts,
		renderer: renderer,
		terminal: isTerminal(out),
	}
}

// Clear clears the screen when attached to a terminal.
func (c *Console) Clear() {
	if c.terminal {
		fmt.Fprint(c.out, clearSequence)
	}
}

// Success prints a green check mark followed by the message.
func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(text.Colors{text.FgGreen, text.Bold}, "✓"), fmt.Sprintf(format, args...))
}

// Selected prints "✓ Selected <kind>: <value>" surrounded by blank lines.
func (c *Console) Selected(kind, value string) {
	fmt.Fprintln(c.out)
	c.Success("Selected %s: %s", kind, c.paint(text.Colors{text.FgCyan}, value))
	fmt.Fprintln(c.out)
}

// Notice prints a yellow informational line.
func (c *Console) Notice(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.paint(text.Colors{text.FgYellow}, fmt.Sprintf(format, args...)))
}

// Error prints a red line to the error writer.
func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintln(c.errOut, c.paint(text.Colors{text.FgRed}, fmt.Sprintf(format, args...)))
}

// Goodbye prints the farewell line used when the operator backs out of a menu.
func (c *Console) Goodbye() {
	fmt.Fprintln(c.out, c.paint(text.Colors{text.FgGreen}, "Goodbye! 👋"))
}

// Dim prints a faint line, used to echo commands.
func (c *Console) Dim(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.paint(text.Colors{text.Faint}, fmt.Sprintf(format, args...)))
}

// Rule prints a horizontal separator spanning the terminal width.
func (c *Console) Rule() {
	fmt.Fprintln(c.out, strings.Repeat("─", c.width()))
}

// Status starts a spinner with the given message and returns the function
// that stops it. Without a terminal the message is not shown.
func (c *Console) Status(msg string) func() {
	if !c.terminal {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(c.out))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

// WaitForEnter shows prompt and blocks until the operator presses enter.
// It returns ErrInterrupted on Ctrl+C and io.EOF when input is closed.
func (c *Console) WaitForEnter(prompt string) error {
	prompt = c.paint(text.Colors{text.FgYellow}, prompt)

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			Stdin:           f,
			Stdout:          c.out,
			InterruptPrompt: "^C",
		})
		if err != nil {
			return fmt.Errorf("failed to create readline instance: %w", err)
		}
		defer rl.Close()

		_, err = rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return ErrInterrupted
		}
		return err
	}

	fmt.Fprint(c.out, prompt)
	_, err := bufio.NewReader(c.in).ReadString('\n')
	fmt.Fprintln(c.out)
	return err
}

func (c *Console) paint(colors text.Colors, s string) string {
	if c.opts.NoColor {
		return s
	}
	return colors.Sprint(s)
}

func (c *Console) width() int {
	if f, ok := c.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
