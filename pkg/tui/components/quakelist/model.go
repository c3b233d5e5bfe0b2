// Package quakelist renders the sorted, filtered earthquake list and raises
// selection requests when a row is activated.
package quakelist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/timeutil"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
)

// EmptyText is shown when no event passes the search.
const EmptyText = "No earthquakes found."

const (
	rowHeight  = 3
	rowSpacing = 1
)

// Item adapts an event to the bubbles list.
type Item struct {
	Event quake.Event
}

// FilterValue implements list.Item. Filtering happens in the store.
func (i Item) FilterValue() string { return i.Event.Place }

// Options configures the list.
type Options struct {
	ID     events.ComponentID
	Styles theme.ListTheme
	// Now anchors the relative times; nil means time.Now.
	Now func() time.Time
}

// Model is the earthquake list component.
type Model struct {
	id       events.ComponentID
	list     list.Model
	delegate *delegate
	focused  bool
	styles   theme.ListTheme
	width    int
	height   int
}

var _ ui.Focusable = (*Model)(nil)

// New constructs an empty list.
func New(opts Options) *Model {
	id := opts.ID
	if id == "" {
		id = events.ComponentID("list")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	d := &delegate{styles: opts.Styles, now: now}
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return &Model{id: id, list: l, delegate: d, styles: opts.Styles}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

// SetEvents replaces the rows, keeping the cursor on the same event when it
// is still listed.
func (m *Model) SetEvents(evs []quake.Event) {
	var keep string
	if cur, ok := m.Cursor(); ok {
		keep = cur.ID
	}
	items := make([]list.Item, 0, len(evs))
	target := 0
	for i, ev := range evs {
		items = append(items, Item{Event: ev})
		if ev.ID == keep {
			target = i
		}
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(target)
	}
}

// Len is the number of rows.
func (m *Model) Len() int { return len(m.list.Items()) }

// Events returns the rows in display order.
func (m *Model) Events() []quake.Event {
	items := m.list.Items()
	out := make([]quake.Event, 0, len(items))
	for _, it := range items {
		out = append(out, it.(Item).Event)
	}
	return out
}

// SetSelected highlights the row whose id matches and scrolls to it. An empty
// id removes the highlight.
func (m *Model) SetSelected(id string) {
	m.delegate.selected = id
	if id == "" {
		return
	}
	for i, it := range m.list.Items() {
		if it.(Item).Event.ID == id {
			m.list.Select(i)
			return
		}
	}
}

// Selected is the highlighted event id.
func (m *Model) Selected() string { return m.delegate.selected }

// Cursor returns the event under the keyboard cursor.
func (m *Model) Cursor() (quake.Event, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it.Event, ok
}

// Focus gives the list keyboard control.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.delegate.focused = true
	return events.FocusCmd(m.id)
}

// Blur releases keyboard control.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	m.delegate.focused = false
	return events.BlurCmd(m.id)
}

// Focused reports whether the list has keyboard control.
func (m *Model) Focused() bool { return m.focused }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.SelectionChangeMsg:
		if msg.Current == nil {
			m.SetSelected("")
		} else {
			m.SetSelected(msg.Current.ID)
		}
		return m, nil
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		if msg.String() == "enter" || msg.String() == "space" {
			if ev, ok := m.Cursor(); ok {
				return m, events.SelectRequestCmd(m.id, ev.ID)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// ItemAt returns the event drawn at panel-local row y.
func (m *Model) ItemAt(y int) (quake.Event, bool) {
	if y < 0 {
		return quake.Event{}, false
	}
	stride := rowHeight + rowSpacing
	if y%stride >= rowHeight {
		return quake.Event{}, false
	}
	items := m.list.Items()
	start, end := m.list.Paginator.GetSliceBounds(len(items))
	idx := start + y/stride
	if idx >= end {
		return quake.Event{}, false
	}
	return items[idx].(Item).Event, true
}

// ClickAt selects the row at panel-local row y.
func (m *Model) ClickAt(y int) tea.Cmd {
	ev, ok := m.ItemAt(y)
	if !ok {
		return nil
	}
	for i, it := range m.list.Items() {
		if it.(Item).Event.ID == ev.ID {
			m.list.Select(i)
			break
		}
	}
	return events.SelectRequestCmd(m.id, ev.ID)
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.Len() == 0 {
		return m.styles.Empty.Render(EmptyText)
	}
	return m.list.View()
}

type delegate struct {
	styles   theme.ListTheme
	now      func() time.Time
	selected string
	focused  bool
}

func (d *delegate) Height() int { return rowHeight }

func (d *delegate) Spacing() int { return rowSpacing }

func (d *delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d *delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	ev := it.Event
	width := m.Width()
	textWidth := uint(max(width-2, 1))

	marker := "  "
	if index == m.Index() && d.focused {
		marker = "› "
	}
	place := truncate.StringWithTail(ev.Label(), textWidth-min(textWidth, 6), "…")
	meta := fmt.Sprintf("Mag: %s | Depth: %s", quake.FormatMagnitude(ev.Magnitude), quake.FormatDepth(ev.Coordinates.DepthKm))
	when := timeutil.Stamp(ev.OccurredAt()) + " · " + timeutil.Ago(ev.OccurredAt(), d.now())

	lines := []string{place, truncate.StringWithTail(meta, textWidth, "…"), truncate.StringWithTail(when, textWidth, "…")}

	if ev.ID == d.selected && d.selected != "" {
		style := d.styles.Selected.Width(max(width, 1))
		for i, line := range lines {
			prefix := "  "
			if i == 0 {
				prefix = marker
			}
			lines[i] = style.Render(prefix + line)
		}
		_, _ = io.WriteString(w, strings.Join(lines, "\n"))
		return
	}

	lines[0] = d.styles.Cursor.Render(marker) + theme.MagnitudeBadge(quake.FormatMagnitude(ev.Magnitude), ev.Magnitude) + " " + d.styles.Place.Render(place)
	lines[1] = "  " + d.styles.Meta.Render(lines[1])
	lines[2] = "  " + d.styles.Meta.Render(lines[2])
	_, _ = io.WriteString(w, strings.Join(lines, "\n"))
}
