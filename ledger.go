package licensure

import (
	"fmt"
	"sort"

	"github.com/mjtb/licensure/date"
)

// Ledger is the full collection of tracking-week records. It is the single
// source of truth for all recorded hours: loaded fresh for each command
// invocation and fully rewritten on save.
//
// Entries are keyed by their start date. In-memory order is whatever the
// caller produced; the persisted form is always sorted ascending by start.
type Ledger struct {
	weeks []WeekEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{weeks: make([]WeekEntry, 0)}
}

// Len returns the number of week entries.
func (l *Ledger) Len() int { return len(l.weeks) }

// Weeks returns the underlying entries. Callers must treat the slice as
// read-only; use Week or UpsertWeek to mutate.
func (l *Ledger) Weeks() []WeekEntry { return l.weeks }

// Week returns the entry starting on the given date, or nil if none exists.
func (l *Ledger) Week(start date.Date) *WeekEntry {
	for i := range l.weeks {
		if l.weeks[i].Start == start {
			return &l.weeks[i]
		}
	}
	return nil
}

// UpsertWeek returns the entry starting on the given date, creating a zeroed
// entry (end = start+6) on first write. There is no delete operation: the
// ledger is append/overwrite only.
func (l *Ledger) UpsertWeek(start date.Date) *WeekEntry {
	if e := l.Week(start); e != nil {
		return e
	}
	l.weeks = append(l.weeks, NewWeekEntry(start))
	return &l.weeks[len(l.weeks)-1]
}

// First returns the earliest entry, or nil for an empty ledger.
func (l *Ledger) First() *WeekEntry {
	var first *WeekEntry
	for i := range l.weeks {
		if first == nil || l.weeks[i].Start.Before(first.Start) {
			first = &l.weeks[i]
		}
	}
	return first
}

// Last returns the latest entry, or nil for an empty ledger.
func (l *Ledger) Last() *WeekEntry {
	var last *WeekEntry
	for i := range l.weeks {
		if last == nil || l.weeks[i].Start.After(last.Start) {
			last = &l.weeks[i]
		}
	}
	return last
}

// Clone returns a deep copy of the ledger. Save validates a clone so a failed
// validation never reorders the caller's copy.
func (l *Ledger) Clone() *Ledger {
	weeks := make([]WeekEntry, len(l.weeks))
	copy(weeks, l.weeks)
	return &Ledger{weeks: weeks}
}

// stableSort orders entries ascending by start date.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.weeks, func(i, j int) bool {
		return l.weeks[i].Start.Before(l.weeks[j].Start)
	})
}

// Validate enforces every persisted-form invariant in place: each start on
// the fixed week-start weekday, each end equal to start+6, no negative hour
// values, and, after sorting ascending by start, no duplicate start dates.
// It reports the first violation found and applies no partial repair.
func (l *Ledger) Validate() error {
	for i := range l.weeks {
		e := &l.weeks[i]
		if !date.IsWeekStart(e.Start) {
			return fmt.Errorf("%w: %s is a %s, want %s", ErrInvalidWeekStart, e.Start, e.Start.Weekday(), date.WeekStart)
		}
		if e.End != e.Start.Add(6) {
			return fmt.Errorf("%w: week of %s ends %s, want %s", ErrInvalidWeekEnd, e.Start, e.End, e.Start.Add(6))
		}
		for _, c := range Categories {
			if e.Get(c).IsNegative() {
				return fmt.Errorf("%w: %s is %s in week of %s", ErrNegativeHours, c, e.Get(c), e.Start)
			}
		}
	}

	l.stableSort()

	for i := 1; i < len(l.weeks); i++ {
		if l.weeks[i].Start == l.weeks[i-1].Start {
			return fmt.Errorf("%w: two entries start on %s", ErrDuplicateWeek, l.weeks[i].Start)
		}
	}
	return nil
}
