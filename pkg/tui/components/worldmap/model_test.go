package worldmap

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/quake/pkg/quake"
	"tableflip.dev/quake/pkg/tui/events"
	"tableflip.dev/quake/pkg/tui/theme"
)

var (
	eventA = quake.Event{ID: "A", Place: "Los Angeles region", Magnitude: 4.5, Time: 200,
		Coordinates: quake.Coordinates{Longitude: -118.25, Latitude: 34.05, DepthKm: 8.2}}
	eventB = quake.Event{ID: "B", Place: "Tokyo region", Magnitude: 6.1, Time: 100,
		Coordinates: quake.Coordinates{Longitude: 139.69, Latitude: 35.68, DepthKm: 10}}
)

func newMap(duration time.Duration, now time.Time) *Model {
	m := New(Options{
		FlyDuration: duration,
		Now:         func() time.Time { return now },
		Styles:      theme.Default().Map,
	})
	m.SetSize(100, 30)
	m.SetEvents([]quake.Event{eventA, eventB}, 0)
	return m
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func centeredOn(t *testing.T, m *Model, ev quake.Event) {
	t.Helper()
	vp := m.Viewport()
	if !near(vp.Lat, ev.Coordinates.Latitude) || !near(vp.Lon, ev.Coordinates.Longitude) {
		t.Fatalf("expected viewport on %s, got %s", ev.ID, vp)
	}
}

func TestRadiusAndGlyph(t *testing.T) {
	cases := []struct {
		mag    float64
		radius float64
		glyph  string
	}{
		{-1.2, 4, "•"},
		{0.5, 4, "•"},
		{3.5, 7, "●"},
		{6.1, 12.2, "⬤"},
		{5.5, 11, "◉"},
	}
	for _, tc := range cases {
		r := Radius(tc.mag)
		if !near(r, tc.radius) {
			t.Fatalf("Radius(%v) = %v, want %v", tc.mag, r, tc.radius)
		}
		if g := Glyph(r); g != tc.glyph {
			t.Fatalf("Glyph(%v) = %q, want %q", r, g, tc.glyph)
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	vp := Initial
	x, y := vp.Project(vp.Lat, vp.Lon, 72, 36)
	if x != 36 || y != 18 {
		t.Fatalf("center should project to the middle cell, got %d,%d", x, y)
	}
	lat, lon := vp.Unproject(10, 5, 72, 36)
	if px, py := vp.Project(lat, lon, 72, 36); px != 10 || py != 5 {
		t.Fatalf("unproject/project mismatch: got %d,%d", px, py)
	}
	// Zoom 2 spans the whole world: 5 degrees per column at width 72.
	if got := vp.degPerCol(72); !near(got, 5) {
		t.Fatalf("expected 5 deg per column, got %v", got)
	}
	zoomed := Viewport{Zoom: 3}
	if got := zoomed.degPerCol(72); !near(got, 2.5) {
		t.Fatalf("each zoom level should halve the span, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	vp := Viewport{Lat: 89, Lon: 190, Zoom: 42}.Normalize()
	if vp.Lat != maxCenterLat || !near(vp.Lon, -170) || vp.Zoom != MaxZoom {
		t.Fatalf("unexpected normalized viewport %s", vp)
	}
}

func TestIsLand(t *testing.T) {
	land := [][2]float64{{40, -100}, {-25, 134}, {48, 10}, {0, 20}, {-10, -55}, {-80, 0}}
	water := [][2]float64{{0, -140}, {0, -30}, {-40, 80}, {30, -45}}
	for _, p := range land {
		if !IsLand(p[0], p[1]) {
			t.Fatalf("expected land at %v", p)
		}
	}
	for _, p := range water {
		if IsLand(p[0], p[1]) {
			t.Fatalf("expected water at %v", p)
		}
	}
}

func TestFollowerFliesOnSelection(t *testing.T) {
	m := newMap(0, time.Now())

	m.Update(events.SelectionChangeMsg{Current: &eventA})
	centeredOn(t, m, eventA)
	if m.Viewport().Zoom != defaultFocusZoom {
		t.Fatalf("expected focus zoom, got %v", m.Viewport().Zoom)
	}

	m.Update(events.SelectionChangeMsg{Previous: &eventA, Current: &eventB})
	centeredOn(t, m, eventB)

	m.Update(events.SelectionChangeMsg{Previous: &eventB})
	centeredOn(t, m, eventB)
	if m.FlightCount() != 2 {
		t.Fatalf("clearing must not fly, got %d flights", m.FlightCount())
	}
	if _, ok := m.MarkerCells()["B"]; !ok {
		t.Fatalf("expected marker B to stay visible")
	}
}

func TestFollowerIgnoresRedundantChange(t *testing.T) {
	m := newMap(0, time.Now())
	m.Update(events.SelectionChangeMsg{Current: &eventA})
	_, cmd := m.Update(events.SelectionChangeMsg{Previous: &eventA, Current: &eventA})
	if cmd != nil || m.FlightCount() != 1 {
		t.Fatalf("re-selecting the same event must not fly again")
	}
}

func TestFlightAnimates(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newMap(2*time.Second, start)
	target := quake.Event{ID: "T", Coordinates: quake.Coordinates{Latitude: 35, Longitude: 139}}

	_, cmd := m.Update(events.SelectionChangeMsg{Current: &target})
	if cmd == nil || !m.Flying() {
		t.Fatalf("expected a frame command while flying")
	}

	m.Update(FrameMsg{Flight: 1, At: start.Add(time.Second)})
	mid := m.Viewport()
	if !near(mid.Lat, 27.5) || !near(mid.Lon, 69.5) || !near(mid.Zoom, 4) {
		t.Fatalf("unexpected midpoint %s", mid)
	}

	m.Update(FrameMsg{Flight: 99, At: start.Add(3 * time.Second)})
	if !m.Flying() {
		t.Fatalf("stale frames must be ignored")
	}

	_, cmd = m.Update(FrameMsg{Flight: 1, At: start.Add(2 * time.Second)})
	if cmd != nil || m.Flying() {
		t.Fatalf("flight should finish at its duration")
	}
	centeredOn(t, m, target)
}

func TestNewFlightReplacesOld(t *testing.T) {
	start := time.Now()
	m := newMap(time.Second, start)
	m.Update(events.SelectionChangeMsg{Current: &eventA})
	m.Update(events.SelectionChangeMsg{Previous: &eventA, Current: &eventB})

	m.Update(FrameMsg{Flight: 1, At: start.Add(time.Hour)})
	if !m.Flying() {
		t.Fatalf("frames of a replaced flight must be ignored")
	}
	m.Update(FrameMsg{Flight: 2, At: start.Add(time.Hour)})
	centeredOn(t, m, eventB)
}

func TestPanCancelsFlight(t *testing.T) {
	m := newMap(time.Second, time.Now())
	m.Focus()
	m.Update(events.SelectionChangeMsg{Current: &eventA})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Flying() {
		t.Fatalf("user pan should cancel the flight")
	}
	m.Update(tea.KeyPressMsg{Code: '0', Text: "0"})
	if m.Viewport() != Initial {
		t.Fatalf("0 should reset the view, got %s", m.Viewport())
	}
}

func TestKeysIgnoredWhenBlurred(t *testing.T) {
	m := newMap(0, time.Now())
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Viewport() != Initial {
		t.Fatalf("blurred map must ignore keys")
	}
}

func TestSelectedMarkerMatchedByID(t *testing.T) {
	twin := eventA
	twin.ID = "A2"
	twin.Coordinates.Longitude = 10
	twin.Coordinates.Latitude = 10

	cells := layoutMarkers([]quake.Event{eventA, twin, eventB}, "A2", Initial, 100, 29)
	selected := 0
	for _, p := range cells {
		if p.selected {
			selected++
			if p.event.ID != "A2" {
				t.Fatalf("wrong marker highlighted: %s", p.event.ID)
			}
		}
	}
	if selected != 1 || len(cells) != 3 {
		t.Fatalf("expected exactly one highlighted marker of 3, got %d of %d", selected, len(cells))
	}
}

func TestMarkerCollisionPrefersSelection(t *testing.T) {
	small := quake.Event{ID: "small", Magnitude: 1, Coordinates: eventA.Coordinates}
	big := quake.Event{ID: "big", Magnitude: 7, Coordinates: eventA.Coordinates}

	cells := layoutMarkers([]quake.Event{small, big}, "", Initial, 100, 29)
	if len(cells) != 1 {
		t.Fatalf("expected one shared cell, got %d", len(cells))
	}
	for _, p := range cells {
		if p.event.ID != "big" {
			t.Fatalf("larger magnitude should win, got %s", p.event.ID)
		}
	}

	cells = layoutMarkers([]quake.Event{small, big}, "small", Initial, 100, 29)
	for _, p := range cells {
		if p.event.ID != "small" {
			t.Fatalf("selected marker should win, got %s", p.event.ID)
		}
	}
}

func TestClickAtSelectsMarker(t *testing.T) {
	m := newMap(0, time.Now())
	cell, ok := m.MarkerCells()["B"]
	if !ok {
		t.Fatalf("marker B should be visible at the initial view")
	}
	cmd := m.ClickAt(cell[0], cell[1])
	if cmd == nil {
		t.Fatalf("expected a select command")
	}
	msg, ok := cmd().(events.SelectRequestMsg)
	if !ok || msg.EventID != "B" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if m.ClickAt(0, 0) != nil {
		t.Fatalf("clicking empty water should do nothing")
	}
}

func TestJumpAndEnterSelectsAtCrosshair(t *testing.T) {
	m := newMap(0, time.Now())
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: ']', Text: "]"})
	centeredOn(t, m, eventA)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Los Angeles region") || !strings.Contains(view, "Mag: 4.5") {
		t.Fatalf("expected popup for the marker under the crosshair:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on a marker should request selection")
	}
	if msg := cmd().(events.SelectRequestMsg); msg.EventID != "A" {
		t.Fatalf("expected A, got %q", msg.EventID)
	}

	m.Update(tea.KeyPressMsg{Code: '[', Text: "["})
	centeredOn(t, m, eventB)
}

func TestViewStatusLine(t *testing.T) {
	m := newMap(0, time.Now())
	m.SetEvents([]quake.Event{eventA, eventB}, 3)
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	last := lines[len(lines)-1]
	for _, want := range []string{"2 events", "3 skipped", Attribution} {
		if !strings.Contains(last, want) {
			t.Fatalf("expected %q in status line %q", want, last)
		}
	}
}
