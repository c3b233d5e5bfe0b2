// Package worldmap renders earthquakes on a pannable, zoomable terminal world
// map and follows the shared selection with a fly-to animation.
package worldmap

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
	"tableflip.dev/quake/pkg/tui/ui"
	"tableflip.dev/quake/pkg/tui/ui/overlay"
)

// Attribution credits the data source on the status line.
const Attribution = "Data: USGS Earthquake Hazards Program"

const (
	defaultFocusZoom     = 6.0
	defaultFlyDuration   = 2 * time.Second
	defaultFrameInterval = time.Second / 30
	panStep              = 0.25
)

// FrameMsg advances the fly-to animation identified by Flight.
type FrameMsg struct {
	Flight int
	At     time.Time
}

// Describe renders the frame for logs.
func (m FrameMsg) Describe() string {
	return fmt.Sprintf(`flight:%d at:%s`, m.Flight, m.At.Format("15:04:05.000"))
}

// Options configures the map.
type Options struct {
	ID            events.ComponentID
	FocusZoom     float64
	FlyDuration   time.Duration
	FrameInterval time.Duration
	// Now anchors flight start times; nil means time.Now.
	Now    func() time.Time
	Styles theme.MapTheme
}

// Model is the world map component.
type Model struct {
	id      events.ComponentID
	focused bool

	width  int
	height int

	events   []quake.Event
	skipped  int
	selected string

	vp            Viewport
	flight        *flight
	flightSeq     int
	focusZoom     float64
	flyDuration   time.Duration
	frameInterval time.Duration
	now           func() time.Time

	cursor int

	styles theme.MapTheme
}

var _ ui.Focusable = (*Model)(nil)

// New constructs a map showing the initial world view.
func New(opts Options) *Model {
	id := opts.ID
	if id == "" {
		id = events.ComponentID("map")
	}
	zoom := opts.FocusZoom
	if zoom <= 0 {
		zoom = defaultFocusZoom
	}
	frame := opts.FrameInterval
	if frame <= 0 {
		frame = defaultFrameInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Model{
		id:            id,
		vp:            Initial,
		focusZoom:     zoom,
		flyDuration:   opts.FlyDuration,
		frameInterval: frame,
		now:           now,
		cursor:        -1,
		styles:        opts.Styles,
	}
}

// DefaultFlyDuration is the animation length used when none is configured.
func DefaultFlyDuration() time.Duration { return defaultFlyDuration }

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize sets the panel size including the status line.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
}

// SetEvents replaces the plotted events. The map always plots the raw
// collection, never the filtered list.
func (m *Model) SetEvents(evs []quake.Event, skipped int) {
	m.events = evs
	m.skipped = skipped
	m.cursor = -1
}

// SetSelected recolors the marker whose id matches.
func (m *Model) SetSelected(id string) { m.selected = id }

// Viewport returns the current view.
func (m *Model) Viewport() Viewport { return m.vp }

// Flying reports whether an animation is in progress.
func (m *Model) Flying() bool { return m.flight != nil }

// FlightCount is the number of fly-to commands issued so far.
func (m *Model) FlightCount() int { return m.flightSeq }

// Focus gives the map keyboard control.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur releases keyboard control.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return events.BlurCmd(m.id)
}

// Focused reports whether the map has keyboard control.
func (m *Model) Focused() bool { return m.focused }

// FlyTo starts an animation to (lat, lon) at the focus zoom. A new flight
// replaces one in progress.
func (m *Model) FlyTo(lat, lon float64) tea.Cmd {
	target := Viewport{Lat: lat, Lon: lon, Zoom: m.focusZoom}.Normalize()
	m.flightSeq++
	f := flight{
		id:       m.flightSeq,
		from:     m.vp,
		to:       target,
		start:    m.now(),
		duration: m.flyDuration,
	}
	if f.duration <= 0 {
		m.vp = target
		m.flight = nil
		return nil
	}
	m.flight = &f
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id := m.flight.id
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Flight: id, At: t}
	})
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.SelectionChangeMsg:
		return m, m.follow(msg)
	case FrameMsg:
		if m.flight == nil || msg.Flight != m.flight.id {
			return m, nil
		}
		vp, done := m.flight.at(msg.At)
		m.vp = vp
		if done {
			m.flight = nil
			return m, nil
		}
		return m, m.tick()
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

// follow reacts to a selection change: a new non-empty selection flies the
// viewport to it, clearing leaves the viewport where it is.
func (m *Model) follow(msg events.SelectionChangeMsg) tea.Cmd {
	if msg.Current == nil {
		m.selected = ""
		return nil
	}
	m.selected = msg.Current.ID
	if msg.Previous != nil && msg.Previous.ID == msg.Current.ID {
		return nil
	}
	return m.FlyTo(msg.Current.Coordinates.Latitude, msg.Current.Coordinates.Longitude)
}

func (m *Model) handleKey(key string) tea.Cmd {
	gw, gh := m.gridSize()
	switch key {
	case "left", "h":
		m.takeControl(m.vp.Pan(-panStep, 0, gw, gh))
	case "right", "l":
		m.takeControl(m.vp.Pan(panStep, 0, gw, gh))
	case "up", "k":
		m.takeControl(m.vp.Pan(0, -panStep, gw, gh))
	case "down", "j":
		m.takeControl(m.vp.Pan(0, panStep, gw, gh))
	case "+", "=":
		next := m.vp
		next.Zoom = math.Floor(next.Zoom) + 1
		m.takeControl(next.Normalize())
	case "-", "_":
		next := m.vp
		next.Zoom = math.Ceil(next.Zoom) - 1
		m.takeControl(next.Normalize())
	case "0":
		m.takeControl(Initial)
	case "]":
		m.jump(1)
	case "[":
		m.jump(-1)
	case "enter":
		if p, ok := m.atCrosshair(); ok {
			return events.SelectRequestCmd(m.id, p.event.ID)
		}
	}
	return nil
}

// Reset returns to the initial world view.
func (m *Model) Reset() { m.takeControl(Initial) }

// takeControl applies a user-driven move, cancelling any flight.
func (m *Model) takeControl(vp Viewport) {
	m.flight = nil
	m.vp = vp
}

// jump centers the next or previous marker in feed order.
func (m *Model) jump(step int) {
	n := len(m.events)
	if n == 0 {
		return
	}
	next := m.cursor + step
	if m.cursor < 0 && step < 0 {
		next = n - 1
	}
	next = ((next % n) + n) % n
	m.cursor = next
	ev := m.events[next]
	vp := m.vp
	vp.Lat = ev.Coordinates.Latitude
	vp.Lon = ev.Coordinates.Longitude
	m.takeControl(vp.Normalize())
}

// ClickAt selects the marker at panel-local cell (x, y), allowing one cell
// of slack horizontally.
func (m *Model) ClickAt(x, y int) tea.Cmd {
	gw, gh := m.gridSize()
	if y < 0 || y >= gh {
		return nil
	}
	cells := layoutMarkers(m.events, m.selected, m.vp, gw, gh)
	for _, dx := range []int{0, -1, 1} {
		if p, ok := cells[[2]int{x + dx, y}]; ok {
			return events.SelectRequestCmd(m.id, p.event.ID)
		}
	}
	return nil
}

// MarkerAt reports the event drawn at panel-local cell (x, y).
func (m *Model) MarkerAt(x, y int) (quake.Event, bool) {
	gw, gh := m.gridSize()
	p, ok := layoutMarkers(m.events, m.selected, m.vp, gw, gh)[[2]int{x, y}]
	return p.event, ok
}

// MarkerCells lists where each visible event was drawn, keyed by id.
func (m *Model) MarkerCells() map[string][2]int {
	gw, gh := m.gridSize()
	out := map[string][2]int{}
	for cell, p := range layoutMarkers(m.events, m.selected, m.vp, gw, gh) {
		out[p.event.ID] = cell
	}
	return out
}

func (m *Model) atCrosshair() (placed, bool) {
	gw, gh := m.gridSize()
	return nearest(layoutMarkers(m.events, m.selected, m.vp, gw, gh), gw/2, gh/2)
}

// nearest returns the marker within one cell of (cx, cy), preferring the
// exact cell.
func nearest(cells map[[2]int]placed, cx, cy int) (placed, bool) {
	if p, ok := cells[[2]int{cx, cy}]; ok {
		return p, true
	}
	var best placed
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p, ok := cells[[2]int{cx + dx, cy + dy}]
			if !ok {
				continue
			}
			if !found || wins(p, best) {
				best, found = p, true
			}
		}
	}
	return best, found
}

func (m *Model) gridSize() (int, int) {
	w := max(m.width, 1)
	h := m.height
	if h > 1 {
		h--
	}
	return w, max(h, 1)
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	gw, gh := m.gridSize()
	cells := layoutMarkers(m.events, m.selected, m.vp, gw, gh)
	cx, cy := gw/2, gh/2
	halfRow := m.vp.degPerCol(gw) * cellAspect / 2

	lines := make([]string, gh)
	for y := 0; y < gh; y++ {
		var b strings.Builder
		var run strings.Builder
		runKind := cellWater
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(m.terrainStyle(runKind).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < gw; x++ {
			if p, ok := cells[[2]int{x, y}]; ok {
				flush()
				b.WriteString(m.renderMarker(p))
				continue
			}
			if x == cx && y == cy {
				flush()
				b.WriteString(m.styles.Crosshair.Render("+"))
				continue
			}
			lat, lon := m.vp.Unproject(x, y, gw, gh)
			kind := cellWater
			switch {
			case lat > 90 || lat < -90:
			case IsLand(lat, lon):
				kind = cellLand
			case math.Abs(lat) < halfRow:
				kind = cellEquator
			}
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteString(terrainGlyph[kind])
		}
		flush()
		lines[y] = b.String()
	}
	body := strings.Join(lines, "\n")

	if p, ok := nearest(cells, cx, cy); ok {
		popup := m.renderPopup(p.event, gw)
		pw, ph := lipgloss.Width(popup), lipgloss.Height(popup)
		place := overlay.Placement{MarginX: cx + 2, MarginY: cy - ph}
		if place.MarginX+pw > gw {
			place.MarginX = cx - 1 - pw
		}
		if place.MarginY < 0 {
			place.MarginY = cy + 1
		}
		body = overlay.Compose(body, gw, gh, popup, place)
	}

	if m.height > 1 {
		body += "\n" + m.statusLine(gw)
	}
	return body
}

type cellKind int

const (
	cellWater cellKind = iota
	cellLand
	cellEquator
)

var terrainGlyph = [...]string{cellWater: " ", cellLand: "·", cellEquator: "-"}

func (m *Model) terrainStyle(kind cellKind) lipgloss.Style {
	switch kind {
	case cellLand:
		return m.styles.Land
	case cellEquator:
		return m.styles.Graticule
	default:
		return lipgloss.NewStyle()
	}
}

func (m *Model) renderMarker(p placed) string {
	style := m.styles.Marker
	if p.selected {
		style = m.styles.Selected
	}
	r := Radius(p.event.Magnitude)
	if ringed(r) {
		return style.Stroke.Render(Glyph(r))
	}
	return style.Fill.Render(Glyph(r))
}

func (m *Model) renderPopup(ev quake.Event, gridWidth int) string {
	place := ev.Label()
	limit := max(gridWidth/2, 12)
	if ansi.StringWidth(place) > limit {
		place = ansi.Truncate(place, limit, "…")
	}
	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(place),
		"Mag: " + quake.FormatMagnitude(ev.Magnitude),
		"Depth: " + quake.FormatDepth(ev.Coordinates.DepthKm),
	}, "\n")
	return m.styles.Popup.Render(body)
}

func (m *Model) statusLine(width int) string {
	left := fmt.Sprintf("%d events · zoom %.1f · %s", len(m.events), m.vp.Zoom, quake.Coordinates{
		Latitude:  m.vp.Lat,
		Longitude: m.vp.Lon,
	}.Location())
	if m.skipped > 0 {
		left += fmt.Sprintf(" · %d skipped", m.skipped)
	}
	if m.flight != nil {
		left += " · flying"
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(Attribution)
	if gap < 1 {
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", gap) + m.styles.Attribution.Render(Attribution)
}
