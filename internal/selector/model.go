package selector

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	prompt  lipgloss.Style
	current lipgloss.Style
	answer  lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt:  r.NewStyle().Bold(true),
		current: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		answer:  r.NewStyle().Foreground(lipgloss.Color("6")),
		hint:    r.NewStyle().Faint(true),
	}
}

// model is the bubbletea model behind Selector. Navigation wraps around in
// both directions.
type model struct {
	prompt   string
	choices  []string
	cursor   int
	offset   int
	pageSize int
	styles   styles

	chosen    string
	cancelled bool
	done      bool
}

func newModel(prompt string, choices []string, pageSize int, st styles) model {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return model{prompt: prompt, choices: choices, pageSize: pageSize, styles: st}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.chosen = m.choices[m.cursor]
		m.done = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "home", "g":
		m.cursor = 0
		m.scroll()
	case "end", "G":
		m.cursor = len(m.choices) - 1
		m.scroll()
	}
	return m, nil
}

// move shifts the cursor by delta, wrapping from last to first and back.
func (m *model) move(delta int) {
	n := len(m.choices)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

func (m model) View() string {
	var b strings.Builder

	if m.done {
		if m.cancelled {
			return ""
		}
		b.WriteString("[?] " + m.styles.prompt.Render(m.prompt+":") + " " + m.styles.answer.Render(m.chosen) + "\n")
		return b.String()
	}

	b.WriteString("[?] " + m.styles.prompt.Render(m.prompt+":") + "\n")

	end := min(m.offset+m.pageSize, len(m.choices))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.current.Render(" > "+m.choices[i]) + "\n")
			continue
		}
		b.WriteString("   " + m.choices[i] + "\n")
	}

	b.WriteString(m.styles.hint.Render("↑/↓ move • enter select • esc cancel") + "\n")
	return b.String()
}
