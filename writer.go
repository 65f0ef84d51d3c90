package main

import (
	"os"
	"path/filepath"
)

// FileWriter persists a named document
type FileWriter interface {
	WriteFile(name string, data []byte) error
}

// DirWriter writes documents into a single output directory
type DirWriter struct {
	Dir string
}

// NewDirWriter creates a writer rooted at dir
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir}
}

// WriteFile writes data to name inside the output directory, creating the
// directory if needed. Existing files are overwritten.
func (w *DirWriter) WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.Dir, name), data, 0o644)
}
