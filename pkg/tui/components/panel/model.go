// Package panel draws the framed panes the visualizer lays its views out in.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/tui/theme"
)

// Model renders a bordered pane with a title set into the top border.
type Model struct {
	title   string
	focused bool
	styles  theme.PanelTheme
}

// New returns a pane using the panel theme.
func New(th theme.PanelTheme, title string) Model {
	return Model{title: title, styles: th}
}

// SetTitle updates the heading.
func (m *Model) SetTitle(title string) { m.title = title }

// SetFocused switches between the focused and normal frame colors.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Inner is the body size that fits a pane of the given outer size.
func (m Model) Inner(width, height int) (int, int) {
	frame := m.frame()
	return max(width-frame.GetHorizontalFrameSize(), 1), max(height-frame.GetVerticalFrameSize(), 1)
}

// Render frames body to exactly width x height cells.
func (m Model) Render(body string, width, height int) string {
	frame := m.frame()
	iw, ih := m.Inner(width, height)
	lines := strings.Split(body, "\n")
	if len(lines) > ih {
		lines = lines[:ih]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, iw, "")
	}
	content := lipgloss.NewStyle().Width(iw).Height(ih).Render(strings.Join(lines, "\n"))
	out := frame.Render(content)
	if m.title == "" {
		return out
	}

	rows := strings.SplitN(out, "\n", 2)
	label := " " + ansi.Truncate(m.title, max(iw-2, 1), "…") + " "
	edge := frame.GetBorderStyle()
	border := lipgloss.NewStyle().Foreground(frame.GetBorderTopForeground())
	rows[0] = border.Render(edge.TopLeft) +
		m.styles.Title.Render(label) +
		border.Render(strings.Repeat(edge.Top, max(iw-ansi.StringWidth(label), 0))+edge.TopRight)
	return strings.Join(rows, "\n")
}

func (m Model) frame() lipgloss.Style {
	if m.focused {
		return m.styles.FocusedFrame
	}
	return m.styles.Frame
}
