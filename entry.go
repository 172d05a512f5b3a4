package licensure

import (
	"github.com/shopspring/decimal"

	"github.com/mjtb/licensure/date"
)

// WeekEntry is one record per tracking week: a Tuesday start, the Monday six
// days later, and the hours logged per category.
//
// The accessors perform no validation. An entry may transiently hold negative
// or otherwise invalid values in memory; invariants are enforced once, at the
// Save boundary.
type WeekEntry struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`

	IndividualSupervision decimal.Decimal `json:"individual_supervision"`
	GroupSupervision      decimal.Decimal `json:"group_supervision"`
	Direct                decimal.Decimal `json:"direct"`
	Indirect              decimal.Decimal `json:"indirect"`
}

// NewWeekEntry returns a zeroed entry for the week beginning on start.
func NewWeekEntry(start date.Date) WeekEntry {
	return WeekEntry{Start: start, End: start.Add(6)}
}

// Total returns the sum of the four category fields.
func (e *WeekEntry) Total() decimal.Decimal {
	return e.IndividualSupervision.Add(e.GroupSupervision).Add(e.Direct).Add(e.Indirect)
}

// Get returns the hours recorded for the given category.
func (e *WeekEntry) Get(c Category) decimal.Decimal {
	switch c {
	case IndividualSupervision:
		return e.IndividualSupervision
	case GroupSupervision:
		return e.GroupSupervision
	case Direct:
		return e.Direct
	case Indirect:
		return e.Indirect
	}
	return decimal.Zero
}

// Set overwrites the hours for the given category.
func (e *WeekEntry) Set(c Category, v decimal.Decimal) {
	switch c {
	case IndividualSupervision:
		e.IndividualSupervision = v
	case GroupSupervision:
		e.GroupSupervision = v
	case Direct:
		e.Direct = v
	case Indirect:
		e.Indirect = v
	}
}

// Add accumulates delta onto the hours for the given category.
func (e *WeekEntry) Add(c Category, delta decimal.Decimal) {
	e.Set(c, e.Get(c).Add(delta))
}
