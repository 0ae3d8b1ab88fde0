package ports

import "time"

// Run modes recorded in the journal
const (
	RunModeRename  = "rename"
	RunModeReverse = "reverse"
)

// RunRecord is one journaled rename or reverse run
type RunRecord struct {
	ID        int64
	RanAt     time.Time
	Mode      string
	Folder    string
	FileCount int
}

// RunJournal keeps a durable history of successful runs. Journaling is
// best-effort: callers must not fail a rename because the journal did.
type RunJournal interface {
	Open(dbPath string) error
	Record(rec RunRecord) error
	List(limit int) ([]RunRecord, error)
	Close() error
}
