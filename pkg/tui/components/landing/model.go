// Package landing is the start page shown before the visualizer is mounted.
package landing

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
)

// Landing copy.
const (
	Title  = "🌍 Earthquake Visualizer"
	Blurb  = "Visualize earthquakes in real-time with an interactive map and details."
	Button = "Check Recent Earthquake Activity"
	Hint   = "enter to start · ? help · q quit"
)

// EnterMsg asks the router to mount the visualizer.
type EnterMsg struct{}

// Describe renders the message for logs.
func (EnterMsg) Describe() string { return "enter visualizer" }

// EnterCmd wraps EnterMsg in a tea.Cmd.
func EnterCmd() tea.Msg { return EnterMsg{} }

// Model renders the landing page.
type Model struct {
	styles theme.LandingTheme
	width  int
	height int
}

var _ ui.Component = (*Model)(nil)

// New builds the landing page.
func New(styles theme.LandingTheme) *Model {
	return &Model{styles: styles}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", "space":
			return m, EnterCmd
		}
	}
	return m, nil
}

// ButtonAt reports whether panel-local cell (x, y) hits the button.
func (m *Model) ButtonAt(x, y int) bool {
	body := m.body()
	bw, bh := lipgloss.Width(body), lipgloss.Height(body)
	left := max((m.width-bw)/2, 0)
	top := max((m.height-bh)/2, 0)
	button := m.styles.Button.Render(Button)
	btnW, btnH := lipgloss.Width(button), lipgloss.Height(button)
	btnTop := top + bh - btnH - 2
	btnLeft := left + (bw-btnW)/2
	return x >= btnLeft && x < btnLeft+btnW && y >= btnTop && y < btnTop+btnH
}

func (m *Model) body() string {
	title := theme.Gradient(Title, theme.Blue, theme.Purple)
	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		m.styles.Blurb.Render(Blurb),
		"",
		m.styles.Button.Render(Button),
		"",
		m.styles.Hint.Render(Hint),
	)
}

// View implements ui.Component.
func (m *Model) View() string {
	body := m.body()
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
