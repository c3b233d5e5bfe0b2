package state

import (
	"errors"
	"testing"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/quake"
)

var (
	eventA = quake.Event{ID: "A", Place: "Los Angeles region", Magnitude: 4.5, Time: 200}
	eventB = quake.Event{ID: "B", Place: "Tokyo region", Magnitude: 6.1, Time: 100}
)

func loaded(t *testing.T) *Store {
	t.Helper()
	s := New(query.NewestFirst, "")
	if !s.Load([]quake.Event{eventA, eventB}, 0) {
		t.Fatalf("load should succeed on a fresh store")
	}
	return s
}

func viewIDs(s *Store) []string {
	out := make([]string, 0, len(s.View()))
	for _, ev := range s.View() {
		out = append(out, ev.ID)
	}
	return out
}

func TestDefaults(t *testing.T) {
	s := New(query.NewestFirst, "")
	if s.Status().Phase != feed.Loading {
		t.Fatalf("expected loading, got %s", s.Status())
	}
	if s.Sort() != query.NewestFirst || s.Search() != "" || s.SelectedID() != "" {
		t.Fatalf("unexpected defaults")
	}
	if len(s.View()) != 0 || len(s.Events()) != 0 {
		t.Fatalf("expected empty collections before load")
	}
}

func TestLoadOnlyOnce(t *testing.T) {
	s := loaded(t)
	if s.Status().Phase != feed.Ready {
		t.Fatalf("expected ready, got %s", s.Status())
	}
	if s.Load([]quake.Event{{ID: "C"}}, 0) {
		t.Fatalf("second load must be rejected")
	}
	if s.Fail(errors.New("late")) {
		t.Fatalf("fail after ready must be rejected")
	}
	if len(s.Events()) != 2 {
		t.Fatalf("events must not be replaced, got %d", len(s.Events()))
	}
}

func TestFailIsTerminal(t *testing.T) {
	s := New(query.NewestFirst, "")
	if !s.Fail(feed.ErrFetchFailed) {
		t.Fatalf("fail should succeed while loading")
	}
	st := s.Status()
	if st.Phase != feed.Failed || st.Message != "Failed to fetch earthquake data" {
		t.Fatalf("unexpected status %+v", st)
	}
	if s.Load([]quake.Event{eventA}, 0) {
		t.Fatalf("load after failure must be rejected")
	}
	if len(s.View()) != 0 || len(s.Events()) != 0 {
		t.Fatalf("failed store must expose no events")
	}
}

func TestDerivedViewFollowsSortAndSearch(t *testing.T) {
	s := loaded(t)
	if got := viewIDs(s); got[0] != "A" || got[1] != "B" {
		t.Fatalf("newest first should be [A B], got %v", got)
	}
	if !s.SetSort(query.LargestFirst) {
		t.Fatalf("sort change should report true")
	}
	if s.SetSort(query.LargestFirst) {
		t.Fatalf("same sort should report false")
	}
	if got := viewIDs(s); got[0] != "B" || got[1] != "A" {
		t.Fatalf("largest first should be [B A], got %v", got)
	}
	s.SetSearch("TOKYO")
	if got := viewIDs(s); len(got) != 1 || got[0] != "B" {
		t.Fatalf("search should keep only B, got %v", got)
	}
	if ev := s.Events(); ev[0].ID != "A" || len(ev) != 2 {
		t.Fatalf("raw events must stay unfiltered and in feed order")
	}
}

func TestSelectByID(t *testing.T) {
	s := loaded(t)
	change, err := s.Select("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !change.Changed() || change.Previous != nil || change.Current.ID != "B" {
		t.Fatalf("unexpected change %+v", change)
	}
	if !s.IsSelected("B") || s.IsSelected("A") || s.IsSelected("") {
		t.Fatalf("IsSelected must match by id only")
	}

	again, err := s.Select("B")
	if err != nil || again.Changed() {
		t.Fatalf("re-selecting must be a no-op, got %+v %v", again, err)
	}

	next, _ := s.Select("A")
	if next.Previous.ID != "B" || next.Current.ID != "A" {
		t.Fatalf("unexpected change %+v", next)
	}
}

func TestSelectUnknown(t *testing.T) {
	s := loaded(t)
	_, _ = s.Select("A")
	if _, err := s.Select("nope"); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if !s.IsSelected("A") {
		t.Fatalf("a rejected select must keep the previous selection")
	}
}

func TestClear(t *testing.T) {
	s := loaded(t)
	if s.Clear().Changed() {
		t.Fatalf("clearing nothing must not report a change")
	}
	_, _ = s.Select("A")
	change := s.Clear()
	if !change.Changed() || change.Previous.ID != "A" || change.Current != nil {
		t.Fatalf("unexpected change %+v", change)
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("selection should be empty")
	}
}

func TestSelectionSurvivesFilter(t *testing.T) {
	s := loaded(t)
	_, _ = s.Select("A")
	s.SetSearch("tokyo")
	if !s.IsSelected("A") {
		t.Fatalf("filtering the list must not drop the selection")
	}
	if ev, ok := s.Selected(); !ok || ev.Place != "Los Angeles region" {
		t.Fatalf("expected A to remain selected, got %+v", ev)
	}
}
