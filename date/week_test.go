package date

import (
	"testing"
	"time"
)

func TestWeekOf(t *testing.T) {
	testCases := []struct {
		name      string
		day       string
		wantStart string
		wantEnd   string
	}{
		{name: "tuesday maps to itself", day: "2025-01-28", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "wednesday", day: "2025-01-29", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "thursday", day: "2025-01-30", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "friday", day: "2025-01-31", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "saturday", day: "2025-02-01", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "sunday", day: "2025-02-02", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "monday closes the week", day: "2025-02-03", wantStart: "2025-01-28", wantEnd: "2025-02-03"},
		{name: "next tuesday opens a new week", day: "2025-02-04", wantStart: "2025-02-04", wantEnd: "2025-02-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := WeekOf(MustParse(tc.day))
			if w.Start != MustParse(tc.wantStart) || w.End != MustParse(tc.wantEnd) {
				t.Errorf("WeekOf(%s) = [%v, %v], want [%s, %s]", tc.day, w.Start, w.End, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

// Every day of a window must map to the same (start, end) pair.
func TestWeekOf_stableAcrossWindow(t *testing.T) {
	start := MustParse("2025-01-28")
	want := Week{Start: start, End: start.Add(6)}
	for i := 0; i < 7; i++ {
		d := start.Add(i)
		if got := WeekOf(d); got != want {
			t.Errorf("WeekOf(%v) = %+v, want %+v", d, got, want)
		}
	}
}

func TestWeekOf_everyStartIsAWeekStart(t *testing.T) {
	// Walk half a year of days; every computed start must be the fixed weekday.
	d := MustParse("2025-01-01")
	for i := 0; i < 182; i++ {
		w := WeekOf(d.Add(i))
		if w.Start.Weekday() != WeekStart {
			t.Fatalf("WeekOf(%v).Start = %v is a %v", d.Add(i), w.Start, w.Start.Weekday())
		}
		if w.End != w.Start.Add(6) {
			t.Fatalf("WeekOf(%v).End = %v, want start+6", d.Add(i), w.End)
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	today := MustParse("2025-01-30")
	if CurrentWeek(today) != WeekOf(today) {
		t.Error("CurrentWeek must equal WeekOf(today)")
	}
}

func TestWeeks(t *testing.T) {
	start := MustParse("2025-01-28")
	testCases := []struct {
		name  string
		today string
		wantN int
	}{
		{name: "today inside first week", today: "2025-01-30", wantN: 1},
		{name: "today is the start", today: "2025-01-28", wantN: 1},
		{name: "monday still first week", today: "2025-02-03", wantN: 1},
		{name: "next tuesday opens second week", today: "2025-02-04", wantN: 2},
		{name: "wednesday of third week", today: "2025-02-12", wantN: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weeks := Weeks(start, MustParse(tc.today))
			if len(weeks) != tc.wantN {
				t.Fatalf("Weeks(%v, %s) has %d weeks, want %d", start, tc.today, len(weeks), tc.wantN)
			}
			for i, w := range weeks {
				if want := start.Add(7 * i); w.Start != want {
					t.Errorf("week %d starts %v, want %v", i, w.Start, want)
				}
				if w.End != w.Start.Add(6) {
					t.Errorf("week %d ends %v, want start+6", i, w.End)
				}
			}
		})
	}
}

func TestWeeks_startInFuture(t *testing.T) {
	weeks := Weeks(MustParse("2025-06-03"), MustParse("2025-01-30"))
	if len(weeks) != 0 {
		t.Errorf("Weeks with future start = %d weeks, want 0", len(weeks))
	}
}

// A non-Tuesday period start is a documented precondition violation: the
// sequence still steps by 7 days from the given date, uncorrected.
func TestWeeks_uncorrectedStart(t *testing.T) {
	start := MustParse("2025-01-29") // Wednesday
	weeks := Weeks(start, MustParse("2025-02-12"))
	for i, w := range weeks {
		if w.Start.Weekday() != time.Wednesday {
			t.Errorf("week %d drifted to %v", i, w.Start.Weekday())
		}
	}
}

func TestIsWeekStart(t *testing.T) {
	if !IsWeekStart(MustParse("2025-01-28")) {
		t.Error("2025-01-28 is a Tuesday")
	}
	if IsWeekStart(MustParse("2025-01-29")) {
		t.Error("2025-01-29 is not a Tuesday")
	}
	if IsWeekStart(MustParse("2025-01-27")) {
		t.Error("2025-01-27 is not a Tuesday")
	}
}
