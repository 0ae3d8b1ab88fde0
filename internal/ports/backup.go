package ports

import "rinomina/internal/domain"

// BackupStore persists the most recent rename plan so a later run can revert
// it. Store overwrites any prior record; key/value strings round-trip exactly.
type BackupStore interface {
	Store(plan *domain.RenamePlan) error
	Load() (*domain.RenamePlan, error)

	// Path returns the location of the record, for user-facing messages.
	Path() string
}
