package licensure

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Hour values are plain JSON numbers in the ledger file, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// hoursDocument is the persisted shape of the ledger file: a single object
// with a "weeks" array.
type hoursDocument struct {
	Weeks []WeekEntry `json:"weeks"`
}

// DecodeLedger decodes a ledger from its persisted JSON form.
//
// Decoding is purely structural: a hand-edited file whose entries break the
// week invariants still loads. Validation happens on the next Save.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc hoursDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	ledger := NewLedger()
	ledger.weeks = append(ledger.weeks, doc.Weeks...)
	return ledger, nil
}

// EncodeLedger writes the ledger in its persisted JSON form, indented for
// hand inspection, with a trailing newline. Entries are written in their
// in-memory order; Save sorts before encoding.
func EncodeLedger(w io.Writer, l *Ledger) error {
	doc := hoursDocument{Weeks: l.weeks}
	if doc.Weeks == nil {
		doc.Weeks = []WeekEntry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write ledger: %w", err)
	}
	return nil
}
