package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rinomina/internal/domain"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(name), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

func TestScanListsOnlyRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "b.txt")
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "subdir"), "nested.txt")

	entries, err := NewScanner().Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Name == "subdir" || e.Name == "nested.txt" {
			t.Errorf("scan descended into or listed a directory: %s", e.Name)
		}
		if e.Path != filepath.Join(dir, e.Name) {
			t.Errorf("entry path %q does not join dir and name", e.Path)
		}
		if e.ModTime.IsZero() {
			t.Errorf("entry %s has zero mod time", e.Name)
		}
	}
}

func TestScanMissingFolder(t *testing.T) {
	_, err := NewScanner().Scan(filepath.Join(t.TempDir(), "nope"))

	var srcErr *domain.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
}

func TestScanNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "plain.txt")

	_, err := NewScanner().Scan(file)

	var srcErr *domain.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
}

func TestScanEmptyFolder(t *testing.T) {
	entries, err := NewScanner().Scan(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
