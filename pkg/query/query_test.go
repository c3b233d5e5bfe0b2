package query

import (
	"testing"

	"tableflip.dev/quake/pkg/quake"
)

var (
	eventA = quake.Event{ID: "A", Place: "Los Angeles region", Magnitude: 4.5, Time: 200}
	eventB = quake.Event{ID: "B", Place: "Tokyo region", Magnitude: 6.1, Time: 100}
)

func ids(events []quake.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func equalIDs(t *testing.T, got []quake.Event, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func TestScenarioOrdering(t *testing.T) {
	events := []quake.Event{eventA, eventB}

	equalIDs(t, Apply(events, LargestFirst, ""), "B", "A")
	equalIDs(t, Apply(events, OldestFirst, ""), "B", "A")
	equalIDs(t, Apply(events, NewestFirst, ""), "A", "B")
	equalIDs(t, Apply(events, SmallestFirst, ""), "A", "B")

	for _, mode := range Modes() {
		equalIDs(t, Apply(events, mode, "tokyo"), "B")
	}
}

func TestSortComparators(t *testing.T) {
	events := []quake.Event{
		{ID: "1", Magnitude: 2.0, Time: 30},
		{ID: "2", Magnitude: -0.5, Time: 10},
		{ID: "3", Magnitude: 5.2, Time: 20},
		{ID: "4", Magnitude: 3.3, Time: 40},
	}
	cases := []struct {
		mode Mode
		ok   func(a, b quake.Event) bool
	}{
		{NewestFirst, func(a, b quake.Event) bool { return a.Time >= b.Time }},
		{OldestFirst, func(a, b quake.Event) bool { return a.Time <= b.Time }},
		{LargestFirst, func(a, b quake.Event) bool { return a.Magnitude >= b.Magnitude }},
		{SmallestFirst, func(a, b quake.Event) bool { return a.Magnitude <= b.Magnitude }},
	}
	for _, tc := range cases {
		sorted := Sort(events, tc.mode)
		if len(sorted) != len(events) {
			t.Fatalf("%s: sort dropped events", tc.mode)
		}
		for i := 1; i < len(sorted); i++ {
			if !tc.ok(sorted[i-1], sorted[i]) {
				t.Fatalf("%s: order violated at %d: %v", tc.mode, i, ids(sorted))
			}
		}
	}
	if events[0].ID != "1" {
		t.Fatalf("Sort must not mutate its input")
	}
}

func TestNewestReversedIsOldest(t *testing.T) {
	events := []quake.Event{
		{ID: "x", Time: 5}, {ID: "y", Time: 1}, {ID: "z", Time: 9}, {ID: "w", Time: 3},
	}
	newest := Sort(events, NewestFirst)
	oldest := Sort(events, OldestFirst)
	for i := range newest {
		if newest[i].ID != oldest[len(oldest)-1-i].ID {
			t.Fatalf("reverse(newest)=%v is not oldest=%v", ids(newest), ids(oldest))
		}
	}
}

func TestSortTieBreakKeepsFeedOrder(t *testing.T) {
	events := []quake.Event{
		{ID: "first", Magnitude: 3, Time: 1},
		{ID: "second", Magnitude: 3, Time: 1},
		{ID: "third", Magnitude: 3, Time: 1},
	}
	for _, mode := range Modes() {
		equalIDs(t, Sort(events, mode), "first", "second", "third")
	}
}

func TestFilterIdempotentAndEmpty(t *testing.T) {
	events := Sort([]quake.Event{
		eventA, eventB,
		{ID: "C", Place: "Near the coast of TOKYO", Time: 50},
		{ID: "D", Place: "Alaska Peninsula", Time: 75},
	}, NewestFirst)

	once := Filter(events, "Tokyo")
	twice := Filter(once, "Tokyo")
	equalIDs(t, once, "B", "C")
	equalIDs(t, twice, ids(once)...)

	equalIDs(t, Filter(events, ""), ids(events)...)
	if got := Filter(events, "nowhere"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		got, err := ParseMode(mode.String())
		if err != nil || got != mode {
			t.Fatalf("ParseMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if got, err := ParseMode(" LARGEST "); err != nil || got != LargestFirst {
		t.Fatalf("expected case-insensitive parse, got %v %v", got, err)
	}
	if got, _ := ParseMode(""); got != NewestFirst {
		t.Fatalf("empty mode should default to newest")
	}
	if _, err := ParseMode("biggest"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestModeNextCycles(t *testing.T) {
	if NewestFirst.Next(1) != OldestFirst {
		t.Fatalf("expected oldest after newest")
	}
	if SmallestFirst.Next(1) != NewestFirst {
		t.Fatalf("expected wrap to newest")
	}
	if NewestFirst.Next(-1) != SmallestFirst {
		t.Fatalf("expected backward wrap to smallest")
	}
	if LargestFirst.Label() != "Largest Magnitude First" {
		t.Fatalf("unexpected label %q", LargestFirst.Label())
	}
}
