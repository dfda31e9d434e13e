// Package jsonstore owns the on-disk representation of a project.
// Single JSON file, human-readable, portable. No locking; fine for a
// local single-user CLI.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"todo/internal/model"
)

// DefaultFileName is the project file looked up in the working directory
// when no path is configured.
const DefaultFileName = "todos.json"

// ErrNotFound signals that the project file does not exist yet, as opposed
// to an I/O failure. Callers can offer to initialize a project.
var ErrNotFound = errors.New("project file not found")

// CorruptError reports a file that exists but does not parse.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s is corrupted (invalid JSON): %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store reads and writes one project file.
type Store struct {
	Path string
}

// New returns a store for path, defaulting to todos.json in the working
// directory when path is empty.
func New(path string) Store {
	if path == "" {
		path = DefaultFileName
	}
	return Store{Path: path}
}

// Exists reports whether the project file is present.
func (s Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads and parses the project file.
// A missing file returns ErrNotFound; unparseable content returns a
// *CorruptError so callers stop before touching a half-read structure.
func (s Store) Load() (model.Project, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, fmt.Errorf("read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(b, &p); err != nil {
		return model.Project{}, &CorruptError{Path: s.Path, Err: err}
	}
	log.Debug("loaded project", "path", s.Path, "tasks", len(p.Todos))
	return p, nil
}

// Save serializes the full project and overwrites the file.
// Output is deterministic: keys in alphabetical order, indented, with
// non-ASCII text written as-is. The bytes go to a temp file first and are
// renamed into place so a failed write never leaves a half-written file.
func (s Store) Save(p model.Project) error {
	if p.Todos == nil {
		p.Todos = []model.Task{}
	}
	b, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write project file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write project file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write project file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write project file: %w", err)
	}
	log.Debug("saved project", "path", s.Path, "tasks", len(p.Todos))
	return nil
}

// Marshal renders a project in the canonical file format.
func Marshal(p model.Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
