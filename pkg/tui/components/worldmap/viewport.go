package worldmap

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinZoom shows the whole world across the panel width.
	MinZoom = 2.0
	// MaxZoom is the closest zoom level.
	MaxZoom = 10.0
)

const (
	// cellAspect is how many times taller than wide a terminal cell is.
	cellAspect   = 2.0
	maxCenterLat = 85.0
)

// Initial is the viewport the map opens with.
var Initial = Viewport{Lat: 20, Lon: 0, Zoom: MinZoom}

// Viewport is the visible window of an equirectangular world map. Each zoom
// level doubles the scale.
type Viewport struct {
	Lat  float64
	Lon  float64
	Zoom float64
}

func (v Viewport) String() string {
	return fmt.Sprintf("%.2f,%.2f@%.1f", v.Lat, v.Lon, v.Zoom)
}

// Normalize clamps the zoom and center latitude and wraps the longitude.
func (v Viewport) Normalize() Viewport {
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, v.Zoom))
	v.Lat = math.Max(-maxCenterLat, math.Min(maxCenterLat, v.Lat))
	v.Lon = wrapLon(v.Lon)
	return v
}

// degPerCol is the longitude span of one cell for a panel of the given width.
func (v Viewport) degPerCol(width int) float64 {
	if width <= 0 {
		width = 1
	}
	return 360 / (float64(width) * math.Pow(2, v.Zoom-MinZoom))
}

// Project maps (lat, lon) to a cell of a width x height grid. Cells outside
// the grid are returned as-is; callers bound-check.
func (v Viewport) Project(lat, lon float64, width, height int) (x, y int) {
	dpc := v.degPerCol(width)
	dx := wrapLon(lon-v.Lon) / dpc
	dy := (v.Lat - lat) / (dpc * cellAspect)
	x = int(math.Floor(float64(width/2) + 0.5 + dx))
	y = int(math.Floor(float64(height/2) + 0.5 + dy))
	return x, y
}

// Unproject returns the coordinates at the center of cell (x, y).
func (v Viewport) Unproject(x, y, width, height int) (lat, lon float64) {
	dpc := v.degPerCol(width)
	lon = wrapLon(v.Lon + float64(x-width/2)*dpc)
	lat = v.Lat - float64(y-height/2)*dpc*cellAspect
	return lat, lon
}

// Pan moves the center by a fraction of the visible span.
func (v Viewport) Pan(dxFrac, dyFrac float64, width, height int) Viewport {
	dpc := v.degPerCol(width)
	v.Lon += dxFrac * float64(width) * dpc
	v.Lat -= dyFrac * float64(height) * dpc * cellAspect
	return v.Normalize()
}

func wrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// flight animates the viewport between two positions.
type flight struct {
	id       int
	from, to Viewport
	start    time.Time
	duration time.Duration
}

// at returns the viewport at now and whether the flight is over.
func (f flight) at(now time.Time) (Viewport, bool) {
	if f.duration <= 0 {
		return f.to, true
	}
	t := float64(now.Sub(f.start)) / float64(f.duration)
	if t >= 1 {
		return f.to, true
	}
	if t < 0 {
		t = 0
	}
	e := easeInOutCubic(t)
	return Viewport{
		Lat:  f.from.Lat + (f.to.Lat-f.from.Lat)*e,
		Lon:  wrapLon(f.from.Lon + wrapLon(f.to.Lon-f.from.Lon)*e),
		Zoom: f.from.Zoom + (f.to.Zoom-f.from.Zoom)*e,
	}, false
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
