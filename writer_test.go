package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewDirWriter(dir)

	if err := w.WriteFile("abc.md", []byte("content")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc.md"))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q, want %q", data, "content")
	}
}

func TestDirWriterFailure(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// Output directory path is an existing regular file
	w := NewDirWriter(blocker)
	if err := w.WriteFile("abc.md", []byte("content")); err == nil {
		t.Error("expected error writing under a regular file")
	}
}
