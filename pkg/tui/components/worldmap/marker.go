package worldmap

import (
	"math"

	"tableflip.dev/quake/pkg/quake"
)

const (
	radiusPerMagnitude = 2.0
	minRadius          = 4.0
)

// Radius is the circle radius for a magnitude, floored so small and negative
// magnitudes stay visible.
func Radius(mag float64) float64 {
	return math.Max(mag*radiusPerMagnitude, minRadius)
}

// Glyph picks the marker rune for a radius.
func Glyph(radius float64) string {
	switch {
	case radius <= 4:
		return "•"
	case radius <= 8:
		return "●"
	case radius <= 12:
		return "◉"
	default:
		return "⬤"
	}
}

// ringed reports whether a glyph is drawn in the stroke color rather than the
// fill color.
func ringed(radius float64) bool { return radius > 8 }

// placed is a marker resolved to a grid cell.
type placed struct {
	index    int // into the events slice
	event    quake.Event
	x, y     int
	selected bool
}

// layoutMarkers projects every event. When several land on the same cell the
// selected one wins, then the larger magnitude, then feed order.
func layoutMarkers(events []quake.Event, selected string, vp Viewport, width, height int) map[[2]int]placed {
	cells := make(map[[2]int]placed, len(events))
	for i, ev := range events {
		x, y := vp.Project(ev.Coordinates.Latitude, ev.Coordinates.Longitude, width, height)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		p := placed{index: i, event: ev, x: x, y: y, selected: selected != "" && ev.ID == selected}
		key := [2]int{x, y}
		if cur, ok := cells[key]; ok && !wins(p, cur) {
			continue
		}
		cells[key] = p
	}
	return cells
}

func wins(candidate, current placed) bool {
	if candidate.selected != current.selected {
		return candidate.selected
	}
	return candidate.event.Magnitude > current.event.Magnitude
}
