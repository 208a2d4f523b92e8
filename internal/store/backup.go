package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// backupKeep bounds how many timestamped copies are retained per document.
const backupKeep = 5

// rotateBackups copies the current plan file into the local dot-directory
// with a timestamped name and prunes old copies. Missing source is fine
// (first save of a new document).
func (s *Store) rotateBackups() error {
	src := s.Path
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	dir := filepath.Join(s.localDir(), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := time.Now().UTC().Format("20060102-150405.000000") + ".md"
	if err := copyFile(src, filepath.Join(dir, name)); err != nil {
		return err
	}
	return pruneBackups(dir)
}

func pruneBackups(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) <= backupKeep {
		return nil
	}
	// Timestamped names sort chronologically.
	sort.Strings(names)
	for _, n := range names[:len(names)-backupKeep] {
		if err := os.Remove(filepath.Join(dir, n)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
