// Package quakedetail shows the selected earthquake in a closable panel.
package quakedetail

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/timeutil"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
)

const (
	// CloseLabel is the first line of the panel.
	CloseLabel = "✕ Close (esc)"
	// LinkLabel is the text of the USGS event page link.
	LinkLabel = "More Info (USGS)"

	maxWidth = 48
)

// Options configures the panel.
type Options struct {
	ID     events.ComponentID
	Styles theme.DetailTheme
	// Hyperlinks emits OSC 8 links instead of printing the URL.
	Hyperlinks bool
}

// Model is the detail panel. It is hidden while nothing is selected.
type Model struct {
	id         events.ComponentID
	styles     theme.DetailTheme
	hyperlinks bool
	event      *quake.Event
	width      int
	height     int
}

var _ ui.Component = (*Model)(nil)

// New constructs a hidden panel.
func New(opts Options) *Model {
	id := opts.ID
	if id == "" {
		id = events.ComponentID("detail")
	}
	return &Model{id: id, styles: opts.Styles, hyperlinks: opts.Hyperlinks}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize bounds the panel to the space it may cover.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Set shows ev, or hides the panel when ev is nil.
func (m *Model) Set(ev *quake.Event) {
	if ev == nil {
		m.event = nil
		return
	}
	cp := *ev
	m.event = &cp
}

// Event is the event on display.
func (m *Model) Event() (quake.Event, bool) {
	if m.event == nil {
		return quake.Event{}, false
	}
	return *m.event, true
}

// Visible reports whether the panel is shown.
func (m *Model) Visible() bool { return m.event != nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.SelectionChangeMsg:
		m.Set(msg.Current)
	case tea.KeyPressMsg:
		if m.Visible() && msg.String() == "esc" {
			return m, events.ClearSelectionCmd(m.id)
		}
	}
	return m, nil
}

// ClickAt closes the panel when the close button, on the first row inside
// the frame, is hit. Coordinates are local to the rendered panel.
func (m *Model) ClickAt(x, y int) tea.Cmd {
	if !m.Visible() || y != 1 {
		return nil
	}
	left := m.styles.Frame.GetBorderLeftSize() + m.styles.Frame.GetPaddingLeft()
	if x >= left && x < left+lipgloss.Width(CloseLabel) {
		return events.ClearSelectionCmd(m.id)
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.event == nil {
		return ""
	}
	ev := m.event
	frame := m.styles.Frame.GetHorizontalFrameSize()
	width := maxWidth
	if !m.hyperlinks && ev.URL != "" {
		// A printed URL must stay on one line to be clickable.
		width = max(width, ansi.StringWidth(ev.URL)+frame)
	}
	if m.width > 0 {
		width = min(width, m.width)
	}
	inner := max(width-frame, 10)

	field := func(label, value string) string {
		return wordwrap.String(m.styles.Label.Render(label+":")+" "+value, inner)
	}

	link := LinkLabel
	switch {
	case ev.URL == "":
		link = ""
	case m.hyperlinks:
		link = m.styles.Link.Render(termenv.Hyperlink(ev.URL, LinkLabel))
	default:
		link = m.styles.Link.Render(LinkLabel) + "\n" + ansi.Truncate(ev.URL, inner, "…")
	}

	lines := []string{
		m.styles.Close.Render(CloseLabel),
		"",
		m.styles.Title.Render(wordwrap.String(ev.Title(), inner)),
		field("Time", timeutil.Stamp(ev.OccurredAt())),
		field("Location", ev.Coordinates.Location()),
		field("Depth", quake.FormatDepth(ev.Coordinates.DepthKm)),
	}
	if link != "" {
		lines = append(lines, "", link)
	}
	return m.styles.Frame.Width(width).Render(strings.Join(lines, "\n"))
}
