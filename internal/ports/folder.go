package ports

import "rinomina/internal/domain"

// FolderScanner enumerates the regular files directly inside a folder.
// Subdirectories are skipped; there is no recursion.
type FolderScanner interface {
	Scan(dir string) ([]domain.FileEntry, error)
}
