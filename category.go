package licensure

import "fmt"

// Category classifies the hours recorded in a tracking week. The set is
// closed: licensure boards count exactly these four buckets, and the
// persisted file names its fields after their tokens.
type Category int

const (
	// IndividualSupervision is one-on-one supervision time.
	IndividualSupervision Category = iota
	// GroupSupervision is supervision received in a group setting.
	GroupSupervision
	// Direct is direct client contact.
	Direct
	// Indirect covers documentation, case prep, and other non-contact work.
	Indirect
)

// Categories lists all categories in their canonical (persisted) order.
var Categories = []Category{IndividualSupervision, GroupSupervision, Direct, Indirect}

// String returns the stable machine-readable token, as used in flags and in
// the ledger file field names.
func (c Category) String() string {
	switch c {
	case IndividualSupervision:
		return "individual_supervision"
	case GroupSupervision:
		return "group_supervision"
	case Direct:
		return "direct"
	case Indirect:
		return "indirect"
	default:
		return "unknown"
	}
}

// Label returns the human-readable name.
func (c Category) Label() string {
	switch c {
	case IndividualSupervision:
		return "Individual Supervision"
	case GroupSupervision:
		return "Group Supervision"
	case Direct:
		return "Direct (client contact)"
	case Indirect:
		return "Indirect"
	default:
		return "Unknown"
	}
}

// ShortLabel returns the compact column heading used in tables.
func (c Category) ShortLabel() string {
	switch c {
	case IndividualSupervision:
		return "Ind Sv"
	case GroupSupervision:
		return "Grp Sv"
	case Direct:
		return "Direct"
	case Indirect:
		return "Indirect"
	default:
		return "?"
	}
}

// ParseCategory parses a category token.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == c.String() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q: valid categories are individual_supervision, group_supervision, direct, indirect", ErrInvalidCategory, s)
}
