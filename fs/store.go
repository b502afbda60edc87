package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffshot"
)

// Compile-time interface verification.
var _ diffshot.Store = (*Store)(nil)

// Store keeps the whole recent-diffs history in one JSON file. The
// list is read once at startup and rewritten whole on every change;
// there is no incremental update.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the history list. A missing file is an empty history, not
// an error.
func (s *Store) Load() ([]diffshot.SavedDiff, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	var list []diffshot.SavedDiff
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return list, nil
}

// Save writes the whole list, creating the parent directory on first
// use.
func (s *Store) Save(list []diffshot.SavedDiff) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
