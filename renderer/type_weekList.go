package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure"
)

// WeekList is the view model behind the week table: one pre-formatted row per
// tracking week plus a totals row.
type WeekList struct {
	Title  string
	Rows   []WeekRow
	Totals WeekRow
}

// WeekRow holds one rendered table line. All fields are display strings.
type WeekRow struct {
	Start    string
	End      string
	IndSup   string
	GrpSup   string
	Direct   string
	Indirect string
	Total    string
}

// NewWeekList builds the view for the given entries, assumed sorted ascending.
func NewWeekList(title string, weeks []licensure.WeekEntry) *WeekList {
	wl := &WeekList{Title: title}

	var indSup, grpSup, direct, indirect decimal.Decimal
	for i := range weeks {
		e := &weeks[i]
		wl.Rows = append(wl.Rows, WeekRow{
			Start:    e.Start.String(),
			End:      e.End.String(),
			IndSup:   hours(e.IndividualSupervision),
			GrpSup:   hours(e.GroupSupervision),
			Direct:   hours(e.Direct),
			Indirect: hours(e.Indirect),
			Total:    hours(e.Total()),
		})
		indSup = indSup.Add(e.IndividualSupervision)
		grpSup = grpSup.Add(e.GroupSupervision)
		direct = direct.Add(e.Direct)
		indirect = indirect.Add(e.Indirect)
	}

	wl.Totals = WeekRow{
		IndSup:   hours(indSup),
		GrpSup:   hours(grpSup),
		Direct:   hours(direct),
		Indirect: hours(indirect),
		Total:    hours(indSup.Add(grpSup).Add(direct).Add(indirect)),
	}
	return wl
}

// hours formats an hour figure for display, rounded to one decimal place.
func hours(v decimal.Decimal) string {
	return licensure.Round1(v).StringFixed(1)
}
