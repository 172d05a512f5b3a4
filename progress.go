package licensure

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure/date"
)

// LicensureTarget holds the externally supplied goals progress is measured
// against. It is read-only during a command; the core never mutates it.
type LicensureTarget struct {
	// StartDate is the first day of the licensure period. It must fall on
	// the fixed week-start weekday.
	StartDate date.Date
	// TotalHours is the total supervised-hours goal.
	TotalHours int
	// DirectHours is the direct-client-contact goal.
	DirectHours int
	// MinMonths is the minimum months of experience required.
	MinMonths int
	// MinWeeklyAverage is the minimum average hours per week required.
	MinWeeklyAverage decimal.Decimal
}

// Progress is the aggregate view of a ledger measured against a target as of
// a given day. All values carry full precision; rounding to one decimal
// happens only when rendering or serializing (see Round1).
type Progress struct {
	Target LicensureTarget

	TotalHours    decimal.Decimal
	DirectHours   decimal.Decimal
	MonthsElapsed int
	WeeksElapsed  int
	WeeksLogged   int
	WeeklyAverage decimal.Decimal

	TotalPct   decimal.Decimal
	DirectPct  decimal.Decimal
	MonthsPct  decimal.Decimal
	AveragePct decimal.Decimal
}

// ComputeProgress derives all aggregate statistics from the ledger and the
// target configuration, as of today.
func ComputeProgress(l *Ledger, target LicensureTarget, today date.Date) Progress {
	p := Progress{Target: target}

	weeks := l.Weeks()
	for i := range weeks {
		e := &weeks[i]
		p.TotalHours = p.TotalHours.Add(e.Total())
		p.DirectHours = p.DirectHours.Add(e.Direct)
		if e.Total().IsPositive() {
			p.WeeksLogged++
		}
	}

	p.MonthsElapsed = MonthsBetween(target.StartDate, today)

	// Floor-guarded to 1 so a config whose start date lies in the future
	// still yields a sane average instead of a division by zero.
	currentStart := date.CurrentWeek(today).Start
	if !currentStart.Before(target.StartDate) {
		p.WeeksElapsed = currentStart.Sub(target.StartDate)/7 + 1
	} else {
		p.WeeksElapsed = 1
	}

	if p.WeeksElapsed > 0 {
		p.WeeklyAverage = p.TotalHours.Div(decimal.NewFromInt(int64(p.WeeksElapsed)))
	}

	p.TotalPct = pctOf(p.TotalHours, decimal.NewFromInt(int64(target.TotalHours)))
	p.DirectPct = pctOf(p.DirectHours, decimal.NewFromInt(int64(target.DirectHours)))
	p.MonthsPct = pctOf(decimal.NewFromInt(int64(p.MonthsElapsed)), decimal.NewFromInt(int64(target.MinMonths)))
	p.AveragePct = pctOf(p.WeeklyAverage, target.MinWeeklyAverage)

	return p
}

// MonthsBetween counts whole calendar months from start to end. A month
// counts only once end's day-of-month reaches start's day-of-month, so a
// partial final month truncates down. Never negative.
func MonthsBetween(start, end date.Date) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// pctOf returns current/target expressed in percent points, or zero when the
// target is zero or negative.
func pctOf(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return current.Div(target).Mul(decimal.NewFromInt(100))
}

// Round1 rounds to one decimal place, half away from zero. This is the one
// rounding rule for every displayed or serialized figure.
func Round1(v decimal.Decimal) decimal.Decimal { return v.Round(1) }

// goal pairs a rounded current value with its target for serialization.
type goal struct {
	Current json.Number `json:"current"`
	Target  json.Number `json:"target"`
	Pct     json.Number `json:"percentage"`
}

func newGoal(current decimal.Decimal, target string, pct decimal.Decimal) goal {
	return goal{
		Current: json.Number(Round1(current).String()),
		Target:  json.Number(target),
		Pct:     json.Number(Round1(pct).String()),
	}
}

// MarshalJSON serializes the progress figures with every percentage and
// average rounded to one decimal place.
func (p Progress) MarshalJSON() ([]byte, error) {
	months := decimal.NewFromInt(int64(p.MonthsElapsed))
	out := struct {
		TotalHours    goal      `json:"total_hours"`
		DirectHours   goal      `json:"direct_hours"`
		Months        goal      `json:"months"`
		WeeklyAverage goal      `json:"weekly_average"`
		WeeksLogged   int       `json:"weeks_logged"`
		StartDate     date.Date `json:"start_date"`
	}{
		TotalHours:    newGoal(p.TotalHours, decimal.NewFromInt(int64(p.Target.TotalHours)).String(), p.TotalPct),
		DirectHours:   newGoal(p.DirectHours, decimal.NewFromInt(int64(p.Target.DirectHours)).String(), p.DirectPct),
		Months:        newGoal(months, decimal.NewFromInt(int64(p.Target.MinMonths)).String(), p.MonthsPct),
		WeeklyAverage: newGoal(p.WeeklyAverage, p.Target.MinWeeklyAverage.String(), p.AveragePct),
		WeeksLogged:   p.WeeksLogged,
		StartDate:     p.Target.StartDate,
	}
	return json.Marshal(out)
}
