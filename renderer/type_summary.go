package renderer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure"
	"github.com/mjtb/licensure/date"
)

// barWidth is the character width of the progress bars.
const barWidth = 20

// Summary is the view model for the progress report.
type Summary struct {
	AsOf      string
	StartDate string
	Goals     []GoalRow

	WeeksLogged   int
	WeeksElapsed  int
	MonthsElapsed int
}

// GoalRow holds one goal line: current value against target, with a bar.
type GoalRow struct {
	Label   string
	Current string
	Target  string
	Pct     string
	Bar     string
}

// NewSummary builds the progress view as of the given day.
func NewSummary(p licensure.Progress, asOf date.Date) *Summary {
	months := decimal.NewFromInt(int64(p.MonthsElapsed))
	return &Summary{
		AsOf:          asOf.String(),
		StartDate:     p.Target.StartDate.String(),
		WeeksLogged:   p.WeeksLogged,
		WeeksElapsed:  p.WeeksElapsed,
		MonthsElapsed: p.MonthsElapsed,
		Goals: []GoalRow{
			newGoalRow("Total hours", p.TotalHours, decimal.NewFromInt(int64(p.Target.TotalHours)), p.TotalPct),
			newGoalRow("Direct hours", p.DirectHours, decimal.NewFromInt(int64(p.Target.DirectHours)), p.DirectPct),
			newGoalRow("Months", months, decimal.NewFromInt(int64(p.Target.MinMonths)), p.MonthsPct),
			newGoalRow("Weekly average", p.WeeklyAverage, p.Target.MinWeeklyAverage, p.AveragePct),
		},
	}
}

func newGoalRow(label string, current, target, pct decimal.Decimal) GoalRow {
	return GoalRow{
		Label:   label,
		Current: hours(current),
		Target:  target.String(),
		Pct:     licensure.Round1(pct).StringFixed(1),
		Bar:     bar(pct),
	}
}

// bar renders a fixed-width progress bar, clamped at 100%.
func bar(pct decimal.Decimal) string {
	filled := pct.Mul(decimal.NewFromInt(barWidth)).Div(decimal.NewFromInt(100)).IntPart()
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", int(filled)) + strings.Repeat("░", barWidth-int(filled))
}

// Report is the view model for the full export document.
type Report struct {
	*Summary
	Weeks *WeekList
}

// NewReport combines a summary and a week list into an export document.
func NewReport(p licensure.Progress, weeks []licensure.WeekEntry, asOf date.Date) *Report {
	return &Report{
		Summary: NewSummary(p, asOf),
		Weeks:   NewWeekList("Logged Weeks", weeks),
	}
}
