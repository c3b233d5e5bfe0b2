package app

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quake/pkg/feed"
)

func (m *Model) handleKey(key tea.KeyPressMsg) tea.Cmd {
	k := key.String()
	if k == "ctrl+c" {
		m.unmount()
		return tea.Quit
	}
	if m.command.InInputMode() {
		_, cmd := m.command.Update(key)
		return cmd
	}
	if m.helpVisible {
		switch k {
		case "?", "esc", "q":
			m.helpVisible = false
			return nil
		}
		_, cmd := m.help.Update(key)
		return cmd
	}

	switch k {
	case "q":
		m.unmount()
		return tea.Quit
	case "?":
		m.toggleHelp()
		return nil
	case ":":
		return m.command.BeginInput("")
	}

	if m.page == PageLanding {
		_, cmd := m.landing.Update(key)
		return cmd
	}
	return m.handleVisualizerKey(key)
}

func (m *Model) handleVisualizerKey(key tea.KeyPressMsg) tea.Cmd {
	mt := m.mount
	switch key.String() {
	case "/":
		return m.command.BeginSearch(mt.store.Search())
	case "tab", "shift+tab":
		return m.setFocus(otherPane(mt.focus))
	case "s":
		m.setSort(mt.store.Sort().Next(1))
		return nil
	case "S":
		m.setSort(mt.store.Sort().Next(-1))
		return nil
	case "y":
		return m.copySelected()
	case "H":
		m.leave()
		return nil
	case "esc":
		_, cmd := mt.detail.Update(key)
		return cmd
	}

	if mt.store.Status().Phase != feed.Ready {
		return nil
	}
	_, cmd := mt.pane(mt.focus).Update(key)
	return cmd
}

// handleClick hit-tests the detail panel first since it floats over the map,
// then the list and map panes. Clicking a pane also focuses it.
func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft || m.helpVisible || m.command.InInputMode() {
		return nil
	}
	x, y := mouse.X, mouse.Y
	if m.page == PageLanding {
		if m.landing.ButtonAt(x, y) {
			return m.enter()
		}
		return nil
	}

	mt := m.mount
	if mt.store.Status().Phase != feed.Ready {
		return nil
	}
	switch {
	case mt.detail.Visible() && m.detailRect.Contains(x, y):
		return mt.detail.ClickAt(x-m.detailRect.X, y-m.detailRect.Y)
	case m.listRect.Contains(x, y):
		focus := m.setFocus(paneList)
		return tea.Batch(focus, mt.list.ClickAt(y-m.listRect.Y-1))
	case m.mapRect.Contains(x, y):
		focus := m.setFocus(paneMap)
		return tea.Batch(focus, mt.world.ClickAt(x-m.mapRect.X-1, y-m.mapRect.Y-1))
	}
	return nil
}
