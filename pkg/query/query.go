// Package query derives the ordered, filtered list view over a fetched event
// collection.
package query

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/quake/pkg/quake"
)

// Mode selects the list ordering.
type Mode int

const (
	// NewestFirst orders by time, descending.
	NewestFirst Mode = iota
	// OldestFirst orders by time, ascending.
	OldestFirst
	// LargestFirst orders by magnitude, descending.
	LargestFirst
	// SmallestFirst orders by magnitude, ascending.
	SmallestFirst
)

var modeNames = []string{"newest", "oldest", "largest", "smallest"}

var modeLabels = []string{
	"Newest First",
	"Oldest First",
	"Largest Magnitude First",
	"Smallest Magnitude First",
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{NewestFirst, OldestFirst, LargestFirst, SmallestFirst}
}

// ParseMode converts "newest", "oldest", "largest" or "smallest" to a Mode.
// Empty input yields NewestFirst.
func ParseMode(raw string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return NewestFirst, nil
	}
	for i, name := range modeNames {
		if name == key {
			return Mode(i), nil
		}
	}
	return NewestFirst, fmt.Errorf("query: unknown sort mode %q (want one of %s)", raw, strings.Join(modeNames, ", "))
}

// Names lists the accepted mode names.
func Names() []string {
	return append([]string(nil), modeNames...)
}

func (m Mode) valid() bool { return m >= NewestFirst && m <= SmallestFirst }

// String returns the short name accepted by ParseMode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Label returns the menu label.
func (m Mode) Label() string {
	if !m.valid() {
		return m.String()
	}
	return modeLabels[m]
}

// Next cycles forward through the modes; negative steps cycle backward.
func (m Mode) Next(step int) Mode {
	n := len(modeNames)
	next := (int(m) + step) % n
	if next < 0 {
		next += n
	}
	return Mode(next)
}

// Sort returns a sorted copy of events. Equal keys keep their input order.
func Sort(events []quake.Event, mode Mode) []quake.Event {
	out := append([]quake.Event(nil), events...)
	var less func(a, b quake.Event) bool
	switch mode {
	case OldestFirst:
		less = func(a, b quake.Event) bool { return a.Time < b.Time }
	case LargestFirst:
		less = func(a, b quake.Event) bool { return a.Magnitude > b.Magnitude }
	case SmallestFirst:
		less = func(a, b quake.Event) bool { return a.Magnitude < b.Magnitude }
	default:
		less = func(a, b quake.Event) bool { return a.Time > b.Time }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Filter keeps events whose place contains search, ignoring case. An empty
// search keeps everything.
func Filter(events []quake.Event, search string) []quake.Event {
	needle := strings.ToLower(search)
	out := make([]quake.Event, 0, len(events))
	for _, ev := range events {
		if needle == "" || strings.Contains(strings.ToLower(ev.Place), needle) {
			out = append(out, ev)
		}
	}
	return out
}

// Apply sorts then filters, producing the list view.
func Apply(events []quake.Event, mode Mode, search string) []quake.Event {
	return Filter(Sort(events, mode), search)
}
