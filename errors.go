package licensure

import "errors"

// Validation failures surfaced by Save and by callers that must reject bad
// input before it reaches the ledger. Each failure wraps one of these
// sentinels so callers can test with errors.Is.
var (
	// ErrInvalidWeekStart reports an entry whose start date is not on the
	// fixed week-start weekday.
	ErrInvalidWeekStart = errors.New("invalid week start")
	// ErrInvalidWeekEnd reports an entry whose end date is not start+6 days.
	ErrInvalidWeekEnd = errors.New("invalid week end")
	// ErrNegativeHours reports an entry holding a negative hour value.
	ErrNegativeHours = errors.New("negative hours")
	// ErrDuplicateWeek reports two entries sharing the same start date.
	ErrDuplicateWeek = errors.New("duplicate week")
	// ErrInvalidCategory reports an unrecognized category token.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidDate reports an unparsable date, or a date that is required
	// to be a week start and is not.
	ErrInvalidDate = errors.New("invalid date")
	// ErrParse reports a structurally invalid ledger file.
	ErrParse = errors.New("invalid ledger data")
)
