// Package store owns the persistence glue around one plan file: atomic
// writes, backup rotation, debounced autosave, external-change detection,
// the per-file operation log and small UI state. The outline engine never
// talks to the filesystem; everything here is host-side plumbing.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"plane-cli/internal/model"
	"plane-cli/internal/planfile"
)

// Store binds to one plan file. The zero value is unusable; use Open.
type Store struct {
	Path string

	lastModTime time.Time
}

// Open resolves the plan file path. A missing file is fine: it is created
// on first save.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: missing plan file path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	s := &Store{Path: abs}
	s.lastModTime = s.modTime()
	return s, nil
}

// localDir is the dot-directory next to the plan file holding backups, the
// op log and UI state, scoped per document.
func (s *Store) localDir() string {
	dir := filepath.Dir(s.Path)
	base := strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
	return filepath.Join(dir, ".plane-"+base)
}

// Load reads and parses the plan file. A missing file yields an empty
// document.
func (s *Store) Load() (items, archived []model.Item, err error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	s.lastModTime = s.modTime()
	items, archived = planfile.Parse(string(b))
	return items, archived, nil
}

// Save formats and writes the document atomically (tmp + rename), rotating
// a backup of the previous content first.
func (s *Store) Save(items, archived []model.Item) error {
	if err := s.rotateBackups(); err != nil {
		// Backups are best effort; a failed rotation never blocks a save.
		_ = err
	}
	text := planfile.Format(items, archived)
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return err
	}
	s.lastModTime = s.modTime()
	return nil
}

// Changed reports whether the plan file was modified on disk since the
// last Load/Save through this store. Drives the TUI's reload poll.
func (s *Store) Changed() bool {
	return s.modTime().After(s.lastModTime)
}

func (s *Store) modTime() time.Time {
	st, err := os.Stat(s.Path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}
