package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OSOptions configures OSFS.
type OSOptions struct {
	// FollowSymlinks treats a symlink pointing at a directory as a directory.
	// Cycles are not detected.
	FollowSymlinks bool
}

// OSFS lists the real operating system filesystem.
type OSFS struct {
	opts OSOptions
}

// NewOSFS creates an OSFS.
func NewOSFS(opts OSOptions) *OSFS {
	return &OSFS{opts: opts}
}

// Roots returns the filesystem roots: "/" on unix, every mounted drive on windows.
func (o *OSFS) Roots() ([]string, error) {
	return listRoots()
}

// ReadDir lists dir. The directory handle is closed before ReadDir returns.
func (o *OSFS) ReadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		p := filepath.Join(dir, d.Name())
		isDir := d.IsDir()
		if !isDir && o.opts.FollowSymlinks && d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(p); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{
			Name:   d.Name(),
			Path:   p,
			IsDir:  isDir,
			Hidden: isHidden(p, d.Name()),
		})
	}
	return entries, nil
}
