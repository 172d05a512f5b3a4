package date

import "time"

// WeekStart is the weekday every tracking week begins on. The whole ledger is
// bucketed into Tuesday-to-Monday windows, so supervision sessions held on the
// usual Monday-evening slot land in the week they closed, not the next one.
const WeekStart = time.Tuesday

// A Week is one 7-day tracking window. End is always Start+6.
type Week struct {
	Start Date
	End   Date
}

// WeekOf returns the tracking week containing d: its start is the most recent
// occurrence (inclusive) of WeekStart on or before d, and its end is start+6.
// All seven days of a window map to the same Week.
func WeekOf(d Date) Week {
	// offset of d from the start weekday: Tuesday=0 ... Monday=6.
	offset := (int(d.Weekday()) - int(WeekStart) + 7) % 7
	start := d.Add(-offset)
	return Week{Start: start, End: start.Add(6)}
}

// CurrentWeek returns the tracking week containing today.
func CurrentWeek(today Date) Week { return WeekOf(today) }

// Weeks enumerates every 7-day window from periodStart up to and including the
// week containing today.
//
// periodStart must itself be a week-start date; this is the caller's
// responsibility. A non-Tuesday start is not corrected: the sequence still
// steps by fixed 7-day increments from periodStart.
func Weeks(periodStart, today Date) []Week {
	current := WeekOf(today).Start
	var weeks []Week
	for start := periodStart; !start.After(current); start = start.Add(7) {
		weeks = append(weeks, Week{Start: start, End: start.Add(6)})
	}
	return weeks
}

// IsWeekStart reports whether d falls on the fixed week-start weekday.
func IsWeekStart(d Date) bool { return d.Weekday() == WeekStart }
