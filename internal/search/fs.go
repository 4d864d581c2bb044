package search

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name   string
	Path   string
	IsDir  bool
	Hidden bool
}

// FS is the filesystem collaborator a search runs against.
//
// ReadDir may fail for any single directory (permissions, races, not a directory);
// the search treats such a failure as an empty listing and carries on.
type FS interface {
	// Roots returns the directories that seed the first frontier.
	Roots() ([]string, error)
	// ReadDir lists the immediate entries of dir.
	ReadDir(dir string) ([]Entry, error)
}

type staticRoots struct {
	FS
	roots []string
}

// StaticRoots wraps fsys so that Roots returns the given directories instead of the
// filesystem's own roots.
func StaticRoots(fsys FS, roots ...string) FS {
	return &staticRoots{FS: fsys, roots: append([]string(nil), roots...)}
}

func (s *staticRoots) Roots() ([]string, error) {
	return append([]string(nil), s.roots...), nil
}

// IOFS adapts an io/fs.FS. Paths are slash-separated and relative to the fs.FS root;
// names starting with "." are hidden.
type IOFS struct {
	fsys  fs.FS
	roots []string
}

// NewIOFS returns an FS over fsys. Without explicit roots the fs.FS root "." is the
// only root.
func NewIOFS(fsys fs.FS, roots ...string) *IOFS {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &IOFS{fsys: fsys, roots: roots}
}

// Roots returns the configured roots.
func (f *IOFS) Roots() ([]string, error) {
	return append([]string(nil), f.roots...), nil
}

// ReadDir lists dir.
func (f *IOFS) ReadDir(dir string) ([]Entry, error) {
	dirEntries, err := fs.ReadDir(f.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entries = append(entries, Entry{
			Name:   d.Name(),
			Path:   path.Join(dir, d.Name()),
			IsDir:  d.IsDir(),
			Hidden: strings.HasPrefix(d.Name(), "."),
		})
	}
	return entries, nil
}
