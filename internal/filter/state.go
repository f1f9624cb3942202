// Package filter keeps the launcher's live partition of applications into
// those matching the current query and those hidden by it.
//
// State is driven serially from the input loop and is not safe for
// concurrent use.
package filter

import (
	"applaunch/internal/apps"
	"applaunch/internal/match"
)

// Trace entries appended to the log
const (
	LogNoItems      = "NO ITEMS!"
	LogUpdateFilter = "update_filter\n"
)

// Scored pairs a shown application with the score of the last filter pass
type Scored struct {
	Item  *apps.Application
	Score int
}

// State owns the shown/hidden partition, the query, and the selection
type State struct {
	items   []apps.Application
	order   map[*apps.Application]int // inventory index, last tie-break
	matcher match.Matcher

	shown  []Scored
	hidden []*apps.Application

	query    string
	selected int // index into shown, -1 when shown is empty
	verbose  int

	log []string
}

// New creates a State with every item shown in the supplied order
func New(items []apps.Application, m match.Matcher) *State {
	s := &State{
		items:    make([]apps.Application, len(items)),
		order:    make(map[*apps.Application]int, len(items)),
		matcher:  m,
		shown:    make([]Scored, 0, len(items)),
		selected: -1,
	}
	copy(s.items, items)

	for i := range s.items {
		item := &s.items[i]
		s.order[item] = i
		s.shown = append(s.shown, Scored{Item: item})
	}
	if len(s.shown) > 0 {
		s.selected = 0
	}
	return s
}

// SetQuery replaces the query and re-filters
func (s *State) SetQuery(q string) {
	s.query = q
	s.Refilter()
}

// Query returns the current query
func (s *State) Query() string {
	return s.query
}

// Refilter re-derives the partition and ordering against the current query.
// Previously shown items are scanned before previously hidden ones; each item
// is offered to the matcher exactly once.
func (s *State) Refilter() {
	shown := make([]Scored, 0, len(s.items))
	hidden := make([]*apps.Application, 0, len(s.items))

	consider := func(item *apps.Application) {
		if score, ok := s.matcher.Match(item.Name, s.query); ok {
			shown = append(shown, Scored{Item: item, Score: score})
		} else {
			hidden = append(hidden, item)
		}
	}
	for _, sc := range s.shown {
		consider(sc.Item)
	}
	for _, item := range s.hidden {
		consider(item)
	}

	sortShown(shown, s.order)
	s.shown = shown
	s.hidden = hidden

	if len(s.shown) == 0 {
		s.selected = -1
		s.appendLog(LogNoItems)
	} else {
		s.selected = 0
	}
	s.appendLog(LogUpdateFilter)
}

// Shown returns the matching applications, best first.
// The slice must not be modified.
func (s *State) Shown() []Scored {
	return s.shown
}

// Hidden returns the applications excluded by the current query.
// The slice must not be modified.
func (s *State) Hidden() []*apps.Application {
	return s.hidden
}

// Len returns the total number of applications
func (s *State) Len() int {
	return len(s.items)
}

// SetRunCounts refreshes run counts in place, keyed by application name.
// Names absent from counts keep their value; the partition and order are untouched.
func (s *State) SetRunCounts(counts map[string]int) {
	updated := apps.WithRunCounts(s.items, counts)
	for i := range s.items {
		s.items[i].RunCount = updated[i].RunCount
	}
}

// SelectedIndex returns the selected position in Shown, ok is false when nothing is shown
func (s *State) SelectedIndex() (int, bool) {
	if s.selected < 0 || s.selected >= len(s.shown) {
		return 0, false
	}
	return s.selected, true
}

// Selected returns the selected application and its score
func (s *State) Selected() (Scored, bool) {
	idx, ok := s.SelectedIndex()
	if !ok {
		return Scored{}, false
	}
	return s.shown[idx], true
}

// MoveSelection moves the selection by delta, clamped to the shown list
func (s *State) MoveSelection(delta int) {
	if len(s.shown) == 0 {
		return
	}
	next := s.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(s.shown) {
		next = len(s.shown) - 1
	}
	s.selected = next
}

// SetVerbosity sets the detail level, negative values are treated as 0
func (s *State) SetVerbosity(level int) {
	if level < 0 {
		level = 0
	}
	s.verbose = level
}

// Verbosity returns the detail level
func (s *State) Verbosity() int {
	return s.verbose
}

// Log returns the trace entries recorded so far, oldest first
func (s *State) Log() []string {
	return s.log
}

func (s *State) appendLog(entry string) {
	s.log = append(s.log, entry)
}
