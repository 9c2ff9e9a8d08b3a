// Package selector implements the keyboard-navigable single-choice menu used
// to pick a service and then a task.
package selector

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultPageSize is the number of rows shown at once when none is configured.
const DefaultPageSize = 10

// Options configures a Selector.
type Options struct {
	// PageSize is the number of visible rows; longer lists scroll.
	PageSize int
	// NoColor disables highlighting of the current row.
	NoColor bool
}

// Selector shows a vertically scrolling list and returns the chosen entry.
type Selector struct {
	in       io.Reader
	out      io.Writer
	pageSize int
	renderer *lipgloss.Renderer
}

// New creates a Selector reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, opts Options) *Selector {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	renderer := lipgloss.NewRenderer(out)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Selector{in: in, out: out, pageSize: pageSize, renderer: renderer}
}

// Select presents choices under prompt and blocks until the operator confirms
// one with enter. It returns "" without error when the operator cancels, and
// returns "" immediately, without drawing anything, when choices is empty.
func (s *Selector) Select(prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	m := newModel(prompt, choices, s.pageSize, newStyles(s.renderer))
	p := tea.NewProgram(m, tea.WithInput(s.in), tea.WithOutput(s.out))

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", nil
		}
		return "", fmt.Errorf("run selector: %w", err)
	}

	result, ok := final.(model)
	if !ok || result.cancelled {
		return "", nil
	}
	return result.chosen, nil
}
