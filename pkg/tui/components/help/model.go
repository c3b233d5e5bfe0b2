// Package help renders the key reference overlay. The static key tables live
// in help.md; the feed catalog and sort orders are generated so they always
// match what the CLI accepts.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
)

//go:embed help.md
var keysMarkdown string

type Model struct {
	viewport viewport.Model
	styles   theme.HelpTheme
	current  string
	width    int
	height   int
	err      error
}

var _ ui.Component = (*Model)(nil)

// New builds the overlay. current names the feed in use and is marked in the
// catalog table.
func New(styles theme.HelpTheme, current string, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	if styles.Markdown == "" {
		styles.Markdown = "dark"
	}
	m := &Model{viewport: vp, styles: styles, current: current}
	m.SetSize(width, height)
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// SetSize re-renders the markdown wrapped to the new width.
func (m *Model) SetSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.styles.Frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.styles.Frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.render(innerWidth)
}

// Markdown returns the full help document before rendering.
func (m *Model) Markdown() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(keysMarkdown))

	b.WriteString("\n\n## Sort orders\n\n| Name | Order |\n| --- | --- |\n")
	for _, mode := range query.Modes() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", mode, mode.Label())
	}

	b.WriteString("\n## Feeds\n\nPick one with `quake ui --feed <name>`.\n\n| Name | Covers |\n| --- | --- |\n")
	for _, f := range feed.All() {
		name := "`" + f.Name + "`"
		if f.Name == m.current {
			name += " (current)"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", name, f.Description)
	}
	return b.String()
}

func (m *Model) render(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.styles.Markdown),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err == nil {
		var content string
		content, err = renderer.Render(m.Markdown())
		if err == nil {
			m.err = nil
			m.viewport.SetContent(strings.Trim(content, "\n"))
			m.viewport.SetYOffset(0)
			return
		}
	}
	m.err = err
	m.viewport.SetContent("help unavailable: " + err.Error())
}
