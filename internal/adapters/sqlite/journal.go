package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"rinomina/internal/ports"
)

// Journal implements ports.RunJournal using SQLite
type Journal struct {
	db *sql.DB
}

// Ensure Journal implements RunJournal
var _ ports.RunJournal = (*Journal)(nil)

// NewJournal creates an unopened journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal database, creating it when absent
func (j *Journal) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal folder: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			ran_at     TEXT NOT NULL,
			mode       TEXT NOT NULL,
			folder     TEXT NOT NULL,
			file_count INTEGER NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	j.db = db
	return nil
}

// Record appends one run to the journal
func (j *Journal) Record(rec ports.RunRecord) error {
	if j.db == nil {
		return fmt.Errorf("journal not open")
	}
	_, err := j.db.Exec(`
		INSERT INTO runs (ran_at, mode, folder, file_count)
		VALUES (?, ?, ?, ?)
	`, rec.RanAt.Format(time.RFC3339), rec.Mode, rec.Folder, rec.FileCount)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first
func (j *Journal) List(limit int) ([]ports.RunRecord, error) {
	if j.db == nil {
		return nil, fmt.Errorf("journal not open")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`
		SELECT id, ran_at, mode, folder, file_count
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var records []ports.RunRecord
	for rows.Next() {
		var rec ports.RunRecord
		var ranAt string
		if err := rows.Scan(&rec.ID, &ranAt, &rec.Mode, &rec.Folder, &rec.FileCount); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		rec.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
