package rosetta

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Entry is one row of a directory listing
type Entry struct {
	Name   string
	IsFile bool
}

// Directory lists and reads message pack files
type Directory interface {
	// Entries returns the directory listing in a stable order
	Entries() ([]Entry, error)
	// ReadFile returns the content of the named entry
	ReadFile(name string) ([]byte, error)
	// Path returns a display path for the named entry
	Path(name string) string
}

// FSDirectory serves message packs from a directory inside an fs.FS
type FSDirectory struct {
	fsys    fs.FS
	root    string
	display string
}

var _ Directory = &FSDirectory{}

// NewFSDirectory wraps root inside fsys, e.g. an embed.FS or fstest.MapFS.
func NewFSDirectory(fsys fs.FS, root string) *FSDirectory {
	if root == "" {
		root = "."
	}
	return &FSDirectory{fsys: fsys, root: path.Clean(root), display: root}
}

// NewOSDirectory serves message packs from dir on the local file system.
func NewOSDirectory(dir string) *FSDirectory {
	return &FSDirectory{fsys: os.DirFS(dir), root: ".", display: dir}
}

// Entries lists the directory sorted by file name
func (d *FSDirectory) Entries() ([]Entry, error) {
	if d == nil || d.fsys == nil {
		return nil, ErrNotConfigured
	}

	items, err := fs.ReadDir(d.fsys, d.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnavailable, d.display, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{
			Name:   item.Name(),
			IsFile: item.Type().IsRegular(),
		})
	}
	return entries, nil
}

func (d *FSDirectory) ReadFile(name string) ([]byte, error) {
	if d == nil || d.fsys == nil {
		return nil, ErrNotConfigured
	}

	data, err := fs.ReadFile(d.fsys, path.Join(d.root, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, d.Path(name), err)
	}
	return data, nil
}

func (d *FSDirectory) Path(name string) string {
	if d == nil {
		return name
	}
	return filepath.Join(d.display, name)
}
