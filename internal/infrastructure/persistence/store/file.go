// Package store implements the file-backed content store: per-path locking,
// atomic JSON persistence, slug allocation and a generic repository over
// typed content documents.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// ReadJSON reads the JSON file at path into v. A missing file is reported
// with os.ErrNotExist; a file that exists but does not parse is a hard error
// carrying the path, never silently replaced.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("store file %s: %w", path, os.ErrNotExist)
		}
		return fmt.Errorf("could not read store file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store file %s is corrupt: %w", path, err)
	}
	return nil
}

// WriteJSON serializes v and atomically replaces the file at path. The data
// is written to a temporary file in the same directory, synced, then renamed
// over the target, so a concurrent reader sees either the old complete file
// or the new complete file. Parent directories are created if absent.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize store file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %s: %w", dir, err)
	}

	// Temp file must live on the same volume for the rename to be atomic.
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), ulid.Make()))

	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not create temp store file %s: %w", tmpPath, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("could not write temp store file %s: %w", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("could not sync temp store file %s: %w", tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("could not close temp store file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("could not replace store file %s: %w", path, err)
	}
	return nil
}
