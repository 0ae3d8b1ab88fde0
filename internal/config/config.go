package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

const journalFileName = "journal.db"

// BackupRoot returns the folder holding the backup record and run journal:
// the RINOMINA_BACKUP_DIR env var when set, %LOCALAPPDATA%\Rinomina on
// Windows, ~/.rinomina elsewhere.
func BackupRoot() string {
	if env := os.Getenv("RINOMINA_BACKUP_DIR"); env != "" {
		return env
	}

	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "Rinomina")
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return ".rinomina"
	}
	return filepath.Join(home, ".rinomina")
}

// JournalPath returns the run-journal database location under root
func JournalPath(root string) string {
	return filepath.Join(root, journalFileName)
}
