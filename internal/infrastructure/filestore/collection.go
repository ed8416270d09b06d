// Package filestore persists one record collection per JSON file and
// exposes a transactional read-modify-write primitive over it. It is the
// only place that touches the data files; every catalog and lending
// mutation goes through a Collection transaction.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is any entity stored in a collection file. Identifiers are
// positive integers assigned by NextID.
type Record interface {
	RecordID() int
}

// StorageError wraps an I/O or serialization failure against a collection
// file. The collection's state is unchanged when one is returned.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Collection owns the authoritative record set of one entity type.
// The in-memory slice and the file on disk move together: a transaction
// either updates both or neither. Reads are snapshot-consistent.
type Collection[T Record] struct {
	path string

	mu      sync.RWMutex
	records []T
}

// Open loads the collection from path, creating an empty file when none
// exists yet (mirroring how the data files are initialized on first run).
func Open[T Record](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	c := &Collection[T]{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		encoded, encErr := encode[T](nil)
		if encErr != nil {
			return nil, &StorageError{Path: path, Err: encErr}
		}
		if wErr := c.writeFile(encoded); wErr != nil {
			return nil, wErr
		}
		return c, nil
	}
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.records); err != nil {
			return nil, &StorageError{Path: path, Err: err}
		}
	}

	return c, nil
}

// Path returns the collection's backing file path.
func (c *Collection[T]) Path() string { return c.path }

// Snapshot returns a consistent copy of the collection. The copy is safe
// to read after the lock is released; callers must not write through it.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.records)
}

// Update runs fn against a working copy of the collection under the
// exclusive lock. When fn succeeds, the result replaces the persisted
// collection atomically; when fn returns an error, nothing changes.
// A persistence failure surfaces as *StorageError and also leaves both
// the in-memory and on-disk state untouched.
//
// fn must return the full new collection. Records are value types:
// modify a copy and write it back into the slice, never mutate shared
// pointer targets in place.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := fn(clone(c.records))
	if err != nil {
		return err
	}

	encoded, err := encode(updated)
	if err != nil {
		return &StorageError{Path: c.path, Err: err}
	}
	if err := c.writeFile(encoded); err != nil {
		return err
	}

	c.records = updated
	return nil
}

// writeFile replaces the collection file atomically: full write to a
// sibling temp file, then rename over the target. Readers of the file
// never observe a partial write.
func (c *Collection[T]) writeFile(data []byte) error {
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Path: c.path, Err: err}
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return &StorageError{Path: c.path, Err: err}
	}
	return nil
}

// encode marshals a collection the way the data files are laid out:
// a pretty-printed JSON array, an empty array for an empty collection.
func encode[T Record](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.MarshalIndent(records, "", "    ")
}

func clone[T any](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	return out
}
