// Package atomicfile writes files via a temporary file and a final rename, so
// readers never observe partial content.
package atomicfile

import (
	"os"
	"path/filepath"
)

// File wraps a temporary file that moves into place on Close.
type File struct {
	*os.File
	dst string
}

// New creates a temporary file next to the destination path. Data becomes
// visible under the destination name only after Close.
func New(dst string) (*File, error) {
	dir, base := filepath.Split(dst)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+"-tmp-*")
	if err != nil {
		return nil, err
	}
	return &File{File: f, dst: dst}, nil
}

// Close flushes the temporary file and renames it to the destination. On
// error the temporary file is removed.
func (f *File) Close() error {
	if err := f.File.Sync(); err != nil {
		f.abort()
		return err
	}
	if err := f.File.Close(); err != nil {
		f.abort()
		return err
	}
	if err := os.Rename(f.File.Name(), f.dst); err != nil {
		f.abort()
		return err
	}
	return nil
}

// Abort discards the temporary file without touching the destination.
func (f *File) Abort() error {
	if err := f.File.Close(); err != nil && !os.IsNotExist(err) {
		f.abort()
		return err
	}
	f.abort()
	return nil
}

func (f *File) abort() {
	_ = os.Remove(f.File.Name())
}
