package cache

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// Entry is one project slot under the target root.
type Entry struct {
	Name string
	Path string
	Size int64
}

// Store operates on a target root.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore returns a store for root on fsys.
func NewStore(fsys afero.Fs, root string) *Store {
	return &Store{fs: fsys, root: root}
}

// NewOSStore returns a store backed by the real filesystem.
func NewOSStore(root string) *Store {
	return NewStore(afero.NewOsFs(), root)
}

// Root returns the target root path.
func (s *Store) Root() string { return s.root }

// ProjectDir returns the slot directory for a project identifier.
func (s *Store) ProjectDir(identifier string) string {
	return filepath.Join(s.root, identifier)
}

// Exists reports whether path exists in the store's filesystem.
func (s *Store) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, eris.Wrapf(err, "checking %s", path)
	}
	return ok, nil
}

// RootExists reports whether the target root exists.
func (s *Store) RootExists() (bool, error) {
	return s.Exists(s.root)
}

// Size returns the size of path.
func (s *Store) Size(path string) (int64, error) {
	return DirSize(s.fs, path)
}

// Entries lists the immediate subdirectories of the root with their sizes,
// sorted by name. Plain files in the root are ignored.
func (s *Store) Entries() ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "reading target root %s", s.root)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		path := filepath.Join(s.root, info.Name())
		size, err := DirSize(s.fs, path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: info.Name(), Path: path, Size: size})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Total sums entry sizes.
func Total(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}

// Remove deletes path and everything below it.
func (s *Store) Remove(path string) error {
	if err := s.fs.RemoveAll(path); err != nil {
		return eris.Wrapf(err, "removing %s", path)
	}
	return nil
}

// Reset empties the root, leaving the root itself in place. A symlinked root
// keeps its link and the directory it points at is cleared. A missing root is
// created.
func (s *Store) Reset() error {
	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "reading target root %s", s.root)
	}
	for _, info := range infos {
		if err := s.Remove(filepath.Join(s.root, info.Name())); err != nil {
			return err
		}
	}
	if err := s.fs.MkdirAll(s.root, 0755); err != nil {
		return eris.Wrapf(err, "recreating target root %s", s.root)
	}
	return nil
}
