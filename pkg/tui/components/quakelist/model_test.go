package quakelist

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
)

var sample = []quake.Event{
	{ID: "A", Place: "Los Angeles region", Magnitude: 4.5, Time: 1700000000000,
		Coordinates: quake.Coordinates{Longitude: -118.25, Latitude: 34.05, DepthKm: 8.2}},
	{ID: "B", Place: "Tokyo region", Magnitude: 6.1, Time: 1700000300000,
		Coordinates: quake.Coordinates{Longitude: 139.69, Latitude: 35.68, DepthKm: 10}},
	{ID: "C", Place: "Anchorage region", Magnitude: 2.9, Time: 1700000600000,
		Coordinates: quake.Coordinates{Longitude: -149.9, Latitude: 61.2, DepthKm: 35.5}},
}

func newList() *Model {
	now := time.UnixMilli(1700003600000)
	m := New(Options{Styles: theme.Default().List, Now: func() time.Time { return now }})
	m.SetSize(60, 20)
	m.SetEvents(sample)
	return m
}

func requested(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(events.SelectRequestMsg)
	if !ok {
		t.Fatalf("expected SelectRequestMsg, got %T", cmd())
	}
	return msg.EventID
}

func TestEmptyView(t *testing.T) {
	m := New(Options{Styles: theme.Default().List})
	m.SetSize(40, 10)
	if got := ansi.Strip(m.View()); got != EmptyText {
		t.Fatalf("unexpected empty view %q", got)
	}
}

func TestViewRendersRows(t *testing.T) {
	view := ansi.Strip(newList().View())
	for _, want := range []string{"Los Angeles region", "Mag: 4.5 | Depth: 8.20 km", "Tokyo region", "1h ago"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEnterRequestsCursorRow(t *testing.T) {
	m := newList()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("blurred list must ignore keys")
	}

	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if id := requested(t, cmd); id != "B" {
		t.Fatalf("expected B, got %q", id)
	}
}

func TestSelectionChangeHighlightsByID(t *testing.T) {
	m := newList()
	m.Update(events.SelectionChangeMsg{Current: &sample[2]})
	if m.Selected() != "C" {
		t.Fatalf("expected C highlighted, got %q", m.Selected())
	}
	if cur, _ := m.Cursor(); cur.ID != "C" {
		t.Fatalf("cursor should follow the selection, got %q", cur.ID)
	}

	m.Update(events.SelectionChangeMsg{Previous: &sample[2]})
	if m.Selected() != "" {
		t.Fatalf("clearing should drop the highlight")
	}
}

func TestSetEventsKeepsCursor(t *testing.T) {
	m := newList()
	m.SetSelected("B")
	reordered := []quake.Event{sample[2], sample[1], sample[0]}
	m.SetEvents(reordered)
	if cur, _ := m.Cursor(); cur.ID != "B" {
		t.Fatalf("cursor should stay on B, got %q", cur.ID)
	}
	m.SetEvents(sample[:1])
	if cur, _ := m.Cursor(); cur.ID != "A" {
		t.Fatalf("cursor should fall back to the first row, got %q", cur.ID)
	}
}

func TestItemAtAndClick(t *testing.T) {
	m := newList()
	if ev, ok := m.ItemAt(0); !ok || ev.ID != "A" {
		t.Fatalf("row 0 should be A")
	}
	if _, ok := m.ItemAt(3); ok {
		t.Fatalf("spacing rows hold no item")
	}
	if ev, ok := m.ItemAt(5); !ok || ev.ID != "B" {
		t.Fatalf("row 5 should be B")
	}
	if _, ok := m.ItemAt(40); ok {
		t.Fatalf("rows past the end hold no item")
	}
	if id := requested(t, m.ClickAt(9)); id != "C" {
		t.Fatalf("expected C, got %q", id)
	}
}
