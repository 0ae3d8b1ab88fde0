package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"rinomina/internal/domain"
)

// Scanner enumerates regular files directly inside a folder
type Scanner struct{}

// NewScanner creates a filesystem scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns one FileEntry per regular file in dir, in directory-listing
// order. Subdirectories and non-regular files are skipped. A missing folder
// or a non-directory fails with a SourceError before anything is read.
func (s *Scanner) Scan(dir string) ([]domain.FileEntry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &domain.SourceError{Path: dir, Reason: "folder does not exist"}
	}
	if !info.IsDir() {
		return nil, &domain.SourceError{Path: dir, Reason: "not a directory"}
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var entries []domain.FileEntry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}

		fi, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", de.Name(), err)
		}

		entries = append(entries, domain.FileEntry{
			Path:       filepath.Join(dir, de.Name()),
			Name:       de.Name(),
			ModTime:    fi.ModTime(),
			ChangeTime: changeTime(fi),
		})
	}

	return entries, nil
}
