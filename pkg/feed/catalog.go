package feed

import (
	"fmt"
	"sort"
	"strings"
)

const baseURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/"

// DefaultFeed is the feed used when none is configured.
const DefaultFeed = "all_day"

// Feed names one of the fixed USGS summary feeds.
type Feed struct {
	Name        string
	Description string
}

// URL returns the GeoJSON endpoint for the feed.
func (f Feed) URL() string {
	return baseURL + f.Name + ".geojson"
}

var catalog = map[string]string{
	"significant_hour": "Significant earthquakes, past hour",
	"significant_day":  "Significant earthquakes, past day",
	"significant_week": "Significant earthquakes, past 7 days",
	"4.5_hour":         "M4.5+ earthquakes, past hour",
	"4.5_day":          "M4.5+ earthquakes, past day",
	"4.5_week":         "M4.5+ earthquakes, past 7 days",
	"2.5_hour":         "M2.5+ earthquakes, past hour",
	"2.5_day":          "M2.5+ earthquakes, past day",
	"2.5_week":         "M2.5+ earthquakes, past 7 days",
	"1.0_hour":         "M1.0+ earthquakes, past hour",
	"1.0_day":          "M1.0+ earthquakes, past day",
	"1.0_week":         "M1.0+ earthquakes, past 7 days",
	"all_hour":         "All earthquakes, past hour",
	"all_day":          "All earthquakes, past day",
	"all_week":         "All earthquakes, past 7 days",
}

// Lookup resolves a feed by name. Empty input resolves to DefaultFeed.
func Lookup(name string) (Feed, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultFeed
	}
	desc, ok := catalog[key]
	if !ok {
		return Feed{}, fmt.Errorf("feed: unknown feed %q (see `quake feeds`)", name)
	}
	return Feed{Name: key, Description: desc}, nil
}

// All lists the catalog sorted by name.
func All() []Feed {
	out := make([]Feed, 0, len(catalog))
	for name, desc := range catalog {
		out = append(out, Feed{Name: name, Description: desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names lists the feed names, used for flag completion.
func Names() []string {
	feeds := All()
	names := make([]string, len(feeds))
	for i, f := range feeds {
		names[i] = f.Name
	}
	return names
}
