package commands

import (
	"context"
	"fmt"

	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

// ReverseResult contains the outcome of a reverse run
type ReverseResult struct {
	Record  *domain.RenamePlan
	Message string
}

// ReverseCommand restores the file names recorded in the backup and replaces
// the record with its inverse, so a further reverse redoes the rename
type ReverseCommand struct {
	executor ports.PlanExecutor
	backups  ports.BackupStore
	journal  ports.RunJournal // optional, best-effort
}

// NewReverseCommand creates a new ReverseCommand
func NewReverseCommand(executor ports.PlanExecutor, backups ports.BackupStore, journal ports.RunJournal) *ReverseCommand {
	return &ReverseCommand{
		executor: executor,
		backups:  backups,
		journal:  journal,
	}
}

// Execute loads the backup record, reverts it on disk and persists the
// inverse mapping as the new record
func (c *ReverseCommand) Execute(ctx context.Context) (*ReverseResult, error) {
	record, err := c.backups.Load()
	if err != nil {
		return nil, err
	}

	if err := c.executor.Revert(record); err != nil {
		return nil, err
	}

	inverse, err := record.Inverse()
	if err != nil {
		return nil, fmt.Errorf("reverted %d files but cannot invert record: %w", record.Len(), err)
	}
	if err := c.backups.Store(inverse); err != nil {
		return nil, fmt.Errorf("reverted %d files but failed to save backup record: %w", record.Len(), err)
	}

	recordRun(c.journal, ports.RunModeReverse, "", record.Len())

	return &ReverseResult{
		Record:  record,
		Message: fmt.Sprintf("Restored %d files from %s", record.Len(), c.backups.Path()),
	}, nil
}
