package quakedetail

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
)

var tokyo = quake.Event{
	ID:        "B",
	Place:     "Tokyo region",
	Magnitude: 6.1,
	Time:      1700000000000,
	URL:       "https://earthquake.usgs.gov/earthquakes/eventpage/B",
	Coordinates: quake.Coordinates{
		Longitude: 139.69,
		Latitude:  35.68,
		DepthKm:   10,
	},
}

func TestHiddenUntilSelected(t *testing.T) {
	m := New(Options{Styles: theme.Default().Detail})
	if m.Visible() || m.View() != "" {
		t.Fatalf("panel should start hidden")
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Fatalf("esc on a hidden panel should do nothing")
	}
}

func TestViewShowsEventFields(t *testing.T) {
	m := New(Options{Styles: theme.Default().Detail, Hyperlinks: true})
	m.SetSize(60, 20)
	m.Update(events.SelectionChangeMsg{Current: &tokyo})

	view := ansi.Strip(m.View())
	for _, want := range []string{
		CloseLabel,
		"M 6.1 – Tokyo region",
		"Time: 2023-11-14 22:13:20 UTC",
		"Location: 35.680°N, 139.690°E",
		"Depth: 10.00 km",
		LinkLabel,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, tokyo.URL) {
		t.Fatalf("hyperlinked panel should not print the raw URL")
	}
}

func TestPlainLinkPrintsURL(t *testing.T) {
	m := New(Options{Styles: theme.Default().Detail})
	m.Set(&tokyo)
	view := ansi.Strip(m.View())
	found := false
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, tokyo.URL) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the URL on a single line when hyperlinks are off:\n%s", view)
	}
}

func TestPlainLinkTruncatesWhenNarrow(t *testing.T) {
	m := New(Options{Styles: theme.Default().Detail})
	m.SetSize(30, 20)
	m.Set(&tokyo)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "https://earthquake.usgs") || !strings.Contains(view, "…") {
		t.Fatalf("expected a truncated URL:\n%s", view)
	}
	if strings.Contains(view, "tpage/B") {
		t.Fatalf("the URL must not wrap onto a second line:\n%s", view)
	}
}

func TestCloseRequestsClear(t *testing.T) {
	m := New(Options{Styles: theme.Default().Detail})
	m.Set(&tokyo)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("esc should request a clear")
	}
	if _, ok := cmd().(events.ClearSelectionMsg); !ok {
		t.Fatalf("expected ClearSelectionMsg")
	}

	if m.ClickAt(3, 1) == nil {
		t.Fatalf("clicking the close label should request a clear")
	}
	if m.ClickAt(3, 4) != nil {
		t.Fatalf("clicking the body should not close")
	}

	m.Update(events.SelectionChangeMsg{Previous: &tokyo})
	if m.Visible() {
		t.Fatalf("clearing the selection should hide the panel")
	}
}
