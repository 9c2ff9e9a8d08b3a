package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel colours, ANSI 16-colour indices so they survive limited terminals.
const (
	colorBlue  = lipgloss.Color("4")
	colorGreen = lipgloss.Color("2")
	colorCyan  = lipgloss.Color("6")
)

// Field is one "Label: value" line inside a panel.
type Field struct {
	Label string
	Value string
}

// Header clears the screen and prints the banner shown at the top of every
// service-selection round.
func (c *Console) Header(profile, cluster string) {
	c.Clear()

	title := c.renderer.NewStyle().Bold(true).Foreground(colorBlue).Render("🚀 ECS Interactive Shell")
	sub := c.renderer.NewStyle().Faint(true).Render(fmt.Sprintf("Profile: %s | Cluster: %s", profile, cluster))

	fmt.Fprintln(c.out, c.panel("AWS ECS", colorBlue, title+"\n"+sub))
	fmt.Fprintln(c.out)
}

// ConnectionPanel prints the panel announcing which task is being connected to.
func (c *Console) ConnectionPanel(fields ...Field) {
	label := c.renderer.NewStyle().Bold(true).Foreground(colorBlue)
	value := c.renderer.NewStyle().Foreground(colorCyan)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, label.Render(f.Label+":")+" "+value.Render(f.Value))
	}

	fmt.Fprintln(c.out, c.panel("Connecting to ECS Task", colorGreen, strings.Join(lines, "\n")))
}

// panel renders body inside a rounded border with a bold title line.
func (c *Console) panel(title string, border lipgloss.Color, body string) string {
	heading := c.renderer.NewStyle().Bold(true).Foreground(border).Render(title)

	return c.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(heading + "\n" + body)
}
