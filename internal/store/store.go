// internal/store/store.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Resource kinds, one JSON document each under the data directory.
const (
	KindWeddings     = "weddings.json"
	KindProfile      = "profile.json"
	KindSettings     = "settings.json"
	KindSocial       = "social.json"
	KindCustomPages  = "custom_pages.json"
	KindAvailability = "availability.json"
)

// ErrCorrupt marks a resource file that exists but cannot be decoded. A
// missing file is not an error; Read falls back to the caller's default.
var ErrCorrupt = errors.New("resource file is corrupt")

// Store owns the on-disk JSON documents. Every mutation is read whole,
// mutate in memory, write whole; concurrent writers to the same resource
// are last-write-wins at file granularity.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(kind string) string {
	return filepath.Join(s.dir, kind)
}

// Read decodes the resource document into dst. A missing file leaves dst at
// the caller's default and returns nil; an unreadable or undecodable file is
// surfaced as an error.
func Read[T any](s *Store, kind string, dst *T) error {
	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, kind, err)
	}
	return nil
}

// Write serializes the full value and replaces the resource file via a
// temp file and rename, so a concurrent reader never sees a half-written
// document.
func Write[T any](s *Store, kind string, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	tmp, err := os.CreateTemp(s.dir, kind+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", kind, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", kind, err)
	}
	if err := os.Rename(tmpName, s.path(kind)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", kind, err)
	}
	return nil
}
