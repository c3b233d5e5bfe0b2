// Package quake defines the earthquake event record shared by the feed
// client, the derived views and the TUI.
package quake

import (
	"fmt"
	"math"
	"time"
)

// Coordinates is the GeoJSON point triple of an event.
type Coordinates struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	DepthKm   float64 `json:"depthKm" yaml:"depthKm"`
}

// Event is one earthquake occurrence. Events are read-only once decoded.
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Place       string      `json:"place" yaml:"place"`
	Magnitude   float64     `json:"magnitude" yaml:"magnitude"`
	Time        int64       `json:"time" yaml:"time"` // epoch milliseconds
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	URL         string      `json:"url" yaml:"url"`
}

// OccurredAt returns the event time.
func (e Event) OccurredAt() time.Time {
	return time.UnixMilli(e.Time)
}

// Label returns the place, falling back to the id.
func (e Event) Label() string {
	if e.Place != "" {
		return e.Place
	}
	return e.ID
}

// Title renders the "M 4.5 – place" heading used by the detail panel.
func (e Event) Title() string {
	return fmt.Sprintf("M %s – %s", FormatMagnitude(e.Magnitude), e.Label())
}

// Location renders latitude/longitude with hemisphere letters.
func (c Coordinates) Location() string {
	ns := "N"
	if c.Latitude < 0 {
		ns = "S"
	}
	ew := "E"
	if c.Longitude < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.3f°%s, %.3f°%s", math.Abs(c.Latitude), ns, math.Abs(c.Longitude), ew)
}

// FormatMagnitude prints a magnitude the way the feed reports it.
func FormatMagnitude(mag float64) string {
	return fmt.Sprintf("%.1f", mag)
}

// FormatDepth prints a depth in kilometers.
func FormatDepth(depth float64) string {
	return fmt.Sprintf("%.2f km", depth)
}
