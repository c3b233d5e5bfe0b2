package quake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoFeatures is returned when the envelope carries no "features" field.
var ErrNoFeatures = errors.New("quake: feed has no features")

// Decoded holds the events of one feed envelope along with the number of
// features that were dropped as malformed or duplicated.
type Decoded struct {
	Events  []Event
	Skipped int
}

type envelope struct {
	Features *[]json.RawMessage `json:"features"`
}

type feature struct {
	ID         string `json:"id"`
	Properties *struct {
		Place *string  `json:"place"`
		Mag   *float64 `json:"mag"`
		Time  *int64   `json:"time"`
		URL   *string  `json:"url"`
	} `json:"properties"`
	Geometry *struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// Decode reads a GeoJSON feature collection. Features missing an id, a time,
// a magnitude or a two-dimensional point are skipped rather than failing the
// whole collection. Later duplicates of an id are skipped too.
func Decode(r io.Reader) (Decoded, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Decoded{}, err
	}
	if env.Features == nil {
		return Decoded{}, ErrNoFeatures
	}

	raw := *env.Features
	out := Decoded{Events: make([]Event, 0, len(raw))}
	seen := make(map[string]struct{}, len(raw))
	for _, msg := range raw {
		ev, err := decodeFeature(msg)
		if err != nil {
			out.Skipped++
			continue
		}
		if _, dup := seen[ev.ID]; dup {
			out.Skipped++
			continue
		}
		seen[ev.ID] = struct{}{}
		out.Events = append(out.Events, ev)
	}
	return out, nil
}

func decodeFeature(msg json.RawMessage) (Event, error) {
	var f feature
	if err := json.Unmarshal(msg, &f); err != nil {
		return Event{}, err
	}
	id := strings.TrimSpace(f.ID)
	switch {
	case id == "":
		return Event{}, errors.New("quake: feature without id")
	case f.Properties == nil:
		return Event{}, fmt.Errorf("quake: feature %s without properties", id)
	case f.Properties.Time == nil:
		return Event{}, fmt.Errorf("quake: feature %s without time", id)
	case f.Properties.Mag == nil:
		return Event{}, fmt.Errorf("quake: feature %s without magnitude", id)
	case f.Geometry == nil || len(f.Geometry.Coordinates) < 2:
		return Event{}, fmt.Errorf("quake: feature %s without coordinates", id)
	}

	coords := f.Geometry.Coordinates
	ev := Event{
		ID:        id,
		Magnitude: *f.Properties.Mag,
		Time:      *f.Properties.Time,
		Coordinates: Coordinates{
			Longitude: coords[0],
			Latitude:  coords[1],
		},
	}
	if len(coords) > 2 {
		ev.Coordinates.DepthKm = coords[2]
	}
	if f.Properties.Place != nil {
		ev.Place = *f.Properties.Place
	}
	if f.Properties.URL != nil {
		ev.URL = *f.Properties.URL
	}
	return ev, nil
}
