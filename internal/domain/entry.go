package domain

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FileEntry references one regular file on disk. Entries are re-derived from
// the filesystem on every run and never persisted.
type FileEntry struct {
	Path       string // full path, the plan key
	Name       string // base name including extension
	ModTime    time.Time
	ChangeTime time.Time
}

// Stem returns the file name without its extension.
func (f FileEntry) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// Ext returns the file extension including the leading dot, or "".
func (f FileEntry) Ext() string {
	return filepath.Ext(f.Name)
}

var digitRunRegex = regexp.MustCompile(`[0-9]+`)

// EmbeddedNumber returns the first maximal run of decimal digits in the stem,
// or -1 when the stem contains none. Entries without a number sort before all
// numbered entries.
func (f FileEntry) EmbeddedNumber() int {
	run := digitRunRegex.FindString(f.Stem())
	if run == "" {
		return -1
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return -1
	}
	return n
}
