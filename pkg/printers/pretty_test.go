package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/quake"
)

func init() {
	color.NoColor = true
}

func TestEventsTable(t *testing.T) {
	now := time.UnixMilli(10 * 60 * 1000)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true, Now: now}
	pp.Title("all_day", 2)
	pp.Events(
		quake.Event{ID: "us1", Place: "Tokyo region", Magnitude: 6.1, Time: 0, Coordinates: quake.Coordinates{DepthKm: 10}},
		quake.Event{ID: "ci2", Place: "Los Angeles region", Magnitude: 4.5, Time: 8 * 60 * 1000},
	)
	out := buf.String()
	for _, want := range []string{"all_day - 2 earthquakes", "Tokyo region", "6.1", "10m ago", "2m ago", "us1", "10.00 km"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Tokyo") > strings.Index(out, "Los Angeles") {
		t.Fatalf("rows must keep input order:\n%s", out)
	}
}

func TestEventsEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Events()
	if !strings.Contains(buf.String(), "No earthquakes found.") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestEventDetail(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Event(quake.Event{
		ID: "us1", Place: "Tokyo region", Magnitude: 6.1, Time: 1709294400000,
		Coordinates: quake.Coordinates{Longitude: 139.69, Latitude: 35.5, DepthKm: 10},
		URL:         "https://example.com/us1",
	})
	out := buf.String()
	for _, want := range []string{"Tokyo region", "2024-03-01 12:00:00 UTC", "35.500°N, 139.690°E", "https://example.com/us1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFeedsMarksCurrent(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Feeds("all_day", feed.All()...)
	out := buf.String()
	if !strings.Contains(out, "*  all_day") {
		t.Fatalf("expected current feed marker:\n%s", out)
	}
	if !strings.Contains(out, "M4.5+ earthquakes, past 7 days") {
		t.Fatalf("expected descriptions:\n%s", out)
	}
}
