// Package licensure implements a week-bucketed ledger of counseling
// supervision hours and the progress arithmetic against licensure targets.
//
// The central contract is the load-permissive / save-strict split: Load only
// requires structurally valid JSON, while Save validates every invariant
// (Tuesday week starts, end = start+6, non-negative hours, unique sorted
// weeks) before a single byte is written, then persists atomically via a
// temp-file rename. Any consumer of a freshly saved file can therefore trust
// the data without re-validating it.
package licensure
