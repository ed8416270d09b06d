package filestore

import (
	"github.com/rs/zerolog/log"
)

// Transact2 runs one all-or-nothing transaction across two collections.
// Both exclusive locks are held for the duration, acquired in argument
// order — every caller must pass the same global order (books before
// borrowings) or concurrent cross-store transactions can deadlock.
//
// fn receives working copies of both collections and returns their full
// new contents. An fn error aborts with no state change. Both files are
// encoded before either is written, so serialization failures abort
// cleanly; if the second file write fails after the first succeeded, the
// first is rolled back to its prior contents before returning.
func Transact2[A Record, B Record](a *Collection[A], b *Collection[B], fn func(as []A, bs []B) ([]A, []B, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	updatedA, updatedB, err := fn(clone(a.records), clone(b.records))
	if err != nil {
		return err
	}

	encodedA, err := encode(updatedA)
	if err != nil {
		return &StorageError{Path: a.path, Err: err}
	}
	encodedB, err := encode(updatedB)
	if err != nil {
		return &StorageError{Path: b.path, Err: err}
	}
	priorA, err := encode(a.records)
	if err != nil {
		return &StorageError{Path: a.path, Err: err}
	}

	if err := a.writeFile(encodedA); err != nil {
		return err
	}
	if err := b.writeFile(encodedB); err != nil {
		if rbErr := a.writeFile(priorA); rbErr != nil {
			log.Error().
				Err(rbErr).
				Str("path", a.path).
				Msg("Failed to roll back first collection after cross-store write failure")
		}
		return err
	}

	a.records = updatedA
	b.records = updatedB
	return nil
}
