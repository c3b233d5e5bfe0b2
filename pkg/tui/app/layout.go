package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/tui/components/landing"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui/overlay"
)

const (
	landingHelp    = "enter start · : command · ? help · q quit"
	visualizerHelp = "tab focus · / search · s sort · y copy · H home · ? help"
	loadingText    = "Loading earthquakes..."

	minListWidth = 32
	maxListWidth = 48
	minLogRows   = 5
	maxLogRows   = 12
)

// refresh sizes every view and hands the composed page to the command bar,
// which draws it above the bar. It runs after every update.
func (m *Model) refresh() {
	w := max(m.width, 1)
	h := max(m.height, 2)
	if w != m.command.Width() || h != m.command.Height() {
		m.command.SetSize(w, h)
	}
	rows := m.command.ContentHeight()

	logRows := 0
	if m.logVisible {
		logRows = min(max(rows/3, minLogRows), maxLogRows)
		if rows-logRows < 8 {
			logRows = 0
		}
	}
	pageRows := rows - logRows

	m.listRect, m.mapRect, m.detailRect = overlay.Rect{}, overlay.Rect{}, overlay.Rect{}
	var body string
	if m.mount == nil {
		m.command.SetHelp(landingHelp)
		m.landing.SetSize(w, pageRows)
		body = m.landing.View()
	} else {
		m.command.SetHelp(visualizerHelp)
		body = m.visualizer(w, pageRows)
	}

	if logRows > 0 {
		m.log.SetSize(w, logRows)
		body += "\n" + m.log.View()
	}
	if m.helpVisible {
		m.help.SetSize(min(w-4, 84), max(rows-2, 8))
		body = overlay.Compose(body, w, rows, m.help.View(), overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}
	m.command.SetContent(body, nil)
}

func (m *Model) visualizer(width, rows int) string {
	mt := m.mount
	header := m.header(width)
	rows = max(rows-1, 1)

	var body string
	status := mt.store.Status()
	switch status.Phase {
	case feed.Loading:
		body = lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+loadingText)
	case feed.Failed:
		body = lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center,
			m.theme.Panel.Error.Render("Error: "+status.Message))
	default:
		body = m.panes(width, rows)
	}
	return header + "\n" + body
}

// panes lays the list and the map side by side below the header row and
// floats the detail panel over the bottom right corner of the map.
func (m *Model) panes(width, rows int) string {
	mt := m.mount
	lw := listWidth(width)
	mw := width - lw

	mt.listPanel.SetTitle(fmt.Sprintf("Earthquakes (%d)", len(mt.store.View())))
	iw, ih := mt.listPanel.Inner(lw, rows)
	mt.list.SetSize(iw, ih)
	left := mt.listPanel.Render(mt.list.View(), lw, rows)

	iw, ih = mt.mapPanel.Inner(mw, rows)
	mt.world.SetSize(iw, ih)
	right := mt.mapPanel.Render(mt.world.View(), mw, rows)

	m.listRect = overlay.Rect{X: 0, Y: 1, Width: lw, Height: rows}
	m.mapRect = overlay.Rect{X: lw, Y: 1, Width: mw, Height: rows}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if !mt.detail.Visible() {
		return body
	}
	mt.detail.SetSize(max(mw-4, 20), max(rows-2, 6))
	body, rect := overlay.ComposeRect(body, width, rows, mt.detail.View(), overlay.Placement{
		Horizontal: lipgloss.Right,
		Vertical:   lipgloss.Bottom,
		MarginX:    2,
		MarginY:    1,
	})
	rect.Y++
	m.detailRect = rect
	return body
}

func (m *Model) header(width int) string {
	mt := m.mount
	line := theme.Gradient(landing.Title, theme.Blue, theme.Purple) +
		m.theme.Panel.Subtle.Render(fmt.Sprintf(" · %s · %s", m.opts.Feed.Name, mt.store.Sort().Label()))
	if s := mt.store.Search(); s != "" {
		line += m.theme.Panel.Subtle.Render(fmt.Sprintf(" · search %q", s))
	}
	return ansi.Truncate(line, width, "…")
}

func listWidth(width int) int {
	if width < 2*minListWidth {
		return max(width/2, 1)
	}
	return min(max(width/3, minListWidth), maxListWidth)
}
