// Package storage persists the completion log as a single JSON document.
// Every mutation is a full load, change, and overwrite of the file.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the load/save contract the tracker and reporter depend on.
type Store interface {
	Load() (Log, error)
	Save(Log) error
}

// Repository stores the log at a fixed path.
type Repository struct {
	path string
}

// NewRepository creates a repository backed by path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the file backing this repository.
func (r *Repository) Path() string {
	return r.path
}

// Load reads the log. A missing file is an empty log; anything unreadable is
// returned as an error without recovery.
func (r *Repository) Load() (Log, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Log{}, nil
		}
		return nil, fmt.Errorf("storage: read %s: %w", r.path, err)
	}
	log := Log{}
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", r.path, err)
	}
	if log == nil {
		return nil, fmt.Errorf("storage: parse %s: document is not an object", r.path)
	}
	log.normalize()
	return log, nil
}

// Save overwrites the file with the full log. The document is written to a
// sibling temp file and renamed into place.
func (r *Repository) Save(log Log) error {
	if log == nil {
		log = Log{}
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: ensure dir: %w", err)
	}
	encoded, err := encode(log)
	if err != nil {
		return fmt.Errorf("storage: encode log: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: replace %s: %w", r.path, err)
	}
	return nil
}

func encode(log Log) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(log); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
