package licensure

import (
	"bytes"
	"fmt"
	"os"
)

// Load reads and decodes the ledger file at path.
//
// Load is deliberately permissive: it fails only when the file is unreadable
// or not structurally valid JSON. Invariants (Tuesday starts, non-negative
// hours, ...) are not checked here, so slightly-malformed legacy data always
// remains readable; Save is the strict side of the contract.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return ledger, nil
}

// Save validates and persists the ledger to path, atomically.
//
// It validates a snapshot (so the caller's copy is never reordered by a
// failed save), sorts entries ascending by start, rejects duplicate weeks,
// then writes to a temporary sibling file, fsyncs it, and renames it over
// the target. The target is never observed half-written, and a failed save
// leaves the previously persisted file untouched.
func Save(path string, l *Ledger) error {
	snapshot := l.Clone()
	if err := snapshot.Validate(); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", tmp, err)
	}

	if err := EncodeLedger(f, snapshot); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	// The fsync before rename is load-bearing: without it a crash can
	// publish an empty or truncated file under the final name.
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
