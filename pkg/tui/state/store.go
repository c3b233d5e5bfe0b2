// Package state holds the visualizer's application state: the fetched events,
// the load status, the sort mode, the search text and the shared selection.
//
// A Store belongs to one visualizer mount and is only touched from the Bubble
// Tea Update loop, so it carries no locks. Writes go through the action
// methods; every view reads from the same Store.
package state

import (
	"errors"
	"fmt"

	"tableflip.dev/quake/pkg/feed"
	"tableflip.dev/quake/pkg/query"
	"tableflip.dev/quake/pkg/quake"
)

// ErrUnknownEvent is returned by Select for ids that are not in the
// collection.
var ErrUnknownEvent = errors.New("state: unknown event")

// Change describes a selection transition. Nil means "nothing selected".
type Change struct {
	Previous *quake.Event
	Current  *quake.Event
}

// Changed reports whether the transition moved the selection.
func (c Change) Changed() bool {
	return idOf(c.Previous) != idOf(c.Current)
}

// Store is the single owner of the visualizer state.
type Store struct {
	events  []quake.Event
	index   map[string]int
	status  feed.Status
	skipped int

	sort   query.Mode
	search string

	selected string

	view []quake.Event
}

// New creates a store in the Loading state with the given list defaults.
func New(sort query.Mode, search string) *Store {
	return &Store{
		index:  map[string]int{},
		sort:   sort,
		search: search,
	}
}

// Load installs the fetched events and moves to Ready. It reports false when
// the store already left Loading; events are never replaced.
func (s *Store) Load(events []quake.Event, skipped int) bool {
	next, ok := s.status.Resolve(nil)
	if !ok {
		return false
	}
	s.status = next
	s.events = append([]quake.Event(nil), events...)
	s.skipped = skipped
	s.index = make(map[string]int, len(s.events))
	for i, ev := range s.events {
		if _, dup := s.index[ev.ID]; !dup {
			s.index[ev.ID] = i
		}
	}
	s.recompute()
	return true
}

// Fail moves to the terminal error state. It reports false when the store
// already left Loading.
func (s *Store) Fail(err error) bool {
	if err == nil {
		err = errors.New("unknown error")
	}
	next, ok := s.status.Resolve(err)
	if !ok {
		return false
	}
	s.status = next
	return true
}

// Status returns the load state.
func (s *Store) Status() feed.Status { return s.status }

// Skipped is the number of malformed features dropped by the decoder.
func (s *Store) Skipped() int { return s.skipped }

// Events returns the raw collection in feed order. The map draws these.
func (s *Store) Events() []quake.Event { return s.events }

// View returns the sorted and filtered list view.
func (s *Store) View() []quake.Event { return s.view }

// Sort returns the current ordering.
func (s *Store) Sort() query.Mode { return s.sort }

// Search returns the current search text.
func (s *Store) Search() string { return s.search }

// SetSort changes the ordering and reports whether it changed.
func (s *Store) SetSort(mode query.Mode) bool {
	if mode == s.sort {
		return false
	}
	s.sort = mode
	s.recompute()
	return true
}

// SetSearch changes the search text and reports whether it changed.
func (s *Store) SetSearch(text string) bool {
	if text == s.search {
		return false
	}
	s.search = text
	s.recompute()
	return true
}

// Lookup finds an event by id.
func (s *Store) Lookup(id string) (quake.Event, bool) {
	i, ok := s.index[id]
	if !ok {
		return quake.Event{}, false
	}
	return s.events[i], true
}

// Selected returns the selected event, if any.
func (s *Store) Selected() (quake.Event, bool) {
	if s.selected == "" {
		return quake.Event{}, false
	}
	return s.Lookup(s.selected)
}

// SelectedID returns the id of the selection or "".
func (s *Store) SelectedID() string { return s.selected }

// IsSelected compares by id; callers never compare event values.
func (s *Store) IsSelected(id string) bool {
	return id != "" && id == s.selected
}

// Select makes id the selection. Selecting the current selection returns an
// unchanged Change.
func (s *Store) Select(id string) (Change, error) {
	next, ok := s.Lookup(id)
	if !ok {
		return Change{}, fmt.Errorf("%w: %q", ErrUnknownEvent, id)
	}
	prev := s.selectedPtr()
	if s.selected == id {
		return Change{Previous: prev, Current: prev}, nil
	}
	s.selected = id
	return Change{Previous: prev, Current: &next}, nil
}

// Clear drops the selection.
func (s *Store) Clear() Change {
	prev := s.selectedPtr()
	s.selected = ""
	return Change{Previous: prev}
}

func (s *Store) selectedPtr() *quake.Event {
	ev, ok := s.Selected()
	if !ok {
		return nil
	}
	return &ev
}

func (s *Store) recompute() {
	s.view = query.Apply(s.events, s.sort, s.search)
}

func idOf(ev *quake.Event) string {
	if ev == nil {
		return ""
	}
	return ev.ID
}
