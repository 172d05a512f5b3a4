package licensure

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure/date"
)

func sampleTarget() LicensureTarget {
	return LicensureTarget{
		StartDate:        date.MustParse("2025-01-28"),
		TotalHours:       3000,
		DirectHours:      1200,
		MinMonths:        24,
		MinWeeklyAverage: dec("15.0"),
	}
}

func TestComputeProgress_totals(t *testing.T) {
	l := NewLedger()
	w1 := l.UpsertWeek(date.MustParse("2025-01-28"))
	w1.Add(Direct, dec("10.0"))
	w1.Add(Indirect, dec("5.0"))
	w2 := l.UpsertWeek(date.MustParse("2025-02-04"))
	w2.Add(Direct, dec("8.0"))

	p := ComputeProgress(l, sampleTarget(), date.MustParse("2025-02-05"))

	if !p.TotalHours.Equal(dec("23.0")) {
		t.Errorf("TotalHours = %v, want 23.0", p.TotalHours)
	}
	if !p.DirectHours.Equal(dec("18.0")) {
		t.Errorf("DirectHours = %v, want 18.0", p.DirectHours)
	}
	if p.WeeksLogged != 2 {
		t.Errorf("WeeksLogged = %d, want 2", p.WeeksLogged)
	}
}

func TestComputeProgress_emptyLedger(t *testing.T) {
	p := ComputeProgress(NewLedger(), sampleTarget(), date.MustParse("2025-02-05"))
	if !p.TotalHours.IsZero() || !p.DirectHours.IsZero() {
		t.Errorf("empty ledger totals = %v / %v, want 0 / 0", p.TotalHours, p.DirectHours)
	}
	if p.WeeksLogged != 0 {
		t.Errorf("WeeksLogged = %d, want 0", p.WeeksLogged)
	}
	for name, pct := range map[string]decimal.Decimal{
		"TotalPct":   p.TotalPct,
		"DirectPct":  p.DirectPct,
		"MonthsPct":  p.MonthsPct,
		"AveragePct": p.AveragePct,
	} {
		if !pct.IsZero() {
			t.Errorf("%s = %v, want 0", name, pct)
		}
	}
}

func TestComputeProgress_zeroTargetsGiveZeroPct(t *testing.T) {
	l := NewLedger()
	l.UpsertWeek(date.MustParse("2025-01-28")).Add(Direct, dec("10"))

	target := LicensureTarget{StartDate: date.MustParse("2025-01-28")}
	p := ComputeProgress(l, target, date.MustParse("2025-02-05"))

	if !p.TotalPct.IsZero() || !p.DirectPct.IsZero() || !p.MonthsPct.IsZero() || !p.AveragePct.IsZero() {
		t.Errorf("zero targets must yield zero percentages, got %v %v %v %v",
			p.TotalPct, p.DirectPct, p.MonthsPct, p.AveragePct)
	}
}

func TestComputeProgress_weeksElapsed(t *testing.T) {
	testCases := []struct {
		name  string
		today string
		want  int
	}{
		{name: "first week", today: "2025-01-30", want: 1},
		{name: "monday of first week", today: "2025-02-03", want: 1},
		{name: "second week", today: "2025-02-04", want: 2},
		{name: "fourth week", today: "2025-02-19", want: 4},
		{name: "start in the future floor-guards to 1", today: "2025-01-01", want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputeProgress(NewLedger(), sampleTarget(), date.MustParse(tc.today))
			if p.WeeksElapsed != tc.want {
				t.Errorf("WeeksElapsed = %d, want %d", p.WeeksElapsed, tc.want)
			}
		})
	}
}

func TestComputeProgress_weeklyAverage(t *testing.T) {
	l := NewLedger()
	l.UpsertWeek(date.MustParse("2025-01-28")).Add(Direct, dec("10"))
	l.UpsertWeek(date.MustParse("2025-02-04")).Add(Direct, dec("20"))

	// Third week: 30 hours over 3 elapsed weeks.
	p := ComputeProgress(l, sampleTarget(), date.MustParse("2025-02-12"))
	if !p.WeeklyAverage.Equal(dec("10")) {
		t.Errorf("WeeklyAverage = %v, want 10", p.WeeklyAverage)
	}
}

func TestMonthsBetween(t *testing.T) {
	testCases := []struct {
		start, end string
		want       int
	}{
		{"2025-01-28", "2025-01-28", 0},
		{"2025-01-28", "2025-02-27", 0}, // one day short of a full month
		{"2025-01-28", "2025-02-28", 1},
		{"2025-01-28", "2025-06-28", 5},
		{"2025-01-28", "2027-01-28", 24},
		{"2025-06-01", "2025-01-01", 0}, // end before start is never negative
		{"2025-01-31", "2025-03-30", 1},
		{"2025-01-31", "2025-03-31", 2},
	}
	for _, tc := range testCases {
		got := MonthsBetween(date.MustParse(tc.start), date.MustParse(tc.end))
		if got != tc.want {
			t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRound1(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"8.233", "8.2"},
		{"102.75", "102.8"}, // half away from zero, not half to even
		{"102.65", "102.7"},
		{"-1.25", "-1.3"},
		{"0", "0"},
	}
	for _, tc := range testCases {
		if got := Round1(dec(tc.in)); !got.Equal(dec(tc.want)) {
			t.Errorf("Round1(%s) = %v, want %s", tc.in, got, tc.want)
		}
	}
}

func TestProgress_MarshalJSON(t *testing.T) {
	l := NewLedger()
	w := l.UpsertWeek(date.MustParse("2025-01-28"))
	w.Add(Direct, dec("10.0"))
	w.Add(Indirect, dec("5.0"))

	p := ComputeProgress(l, sampleTarget(), date.MustParse("2025-01-30"))
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)

	for _, want := range []string{
		`"total_hours":{"current":15.0,"target":3000,"percentage":0.5}`,
		`"direct_hours":{"current":10.0,"target":1200,"percentage":0.8}`,
		`"weeks_logged":1`,
		`"start_date":"2025-01-28"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("marshaled progress missing %q in %s", want, s)
		}
	}
}
