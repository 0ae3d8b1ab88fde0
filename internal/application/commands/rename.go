package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"rinomina/internal/application"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

// RenameResult contains the outcome of an executed rename run
type RenameResult struct {
	Plan       *domain.RenamePlan
	BackupPath string
	Message    string
}

// RenameCommand builds a plan for a folder, applies it and records the backup
type RenameCommand struct {
	scanner  ports.FolderScanner
	executor ports.PlanExecutor
	backups  ports.BackupStore
	journal  ports.RunJournal // optional, best-effort

	Folder string
	Config domain.NamingConfig
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(scanner ports.FolderScanner, executor ports.PlanExecutor, backups ports.BackupStore, journal ports.RunJournal, folder string, cfg domain.NamingConfig) *RenameCommand {
	return &RenameCommand{
		scanner:  scanner,
		executor: executor,
		backups:  backups,
		journal:  journal,
		Folder:   folder,
		Config:   cfg,
	}
}

// Validate checks the folder argument and the naming configuration without
// touching the filesystem
func (c *RenameCommand) Validate() error {
	if strings.TrimSpace(c.Folder) == "" {
		return &application.ValidationError{
			Field:   "folder",
			Message: "target folder is required",
		}
	}
	return c.Config.Validate()
}

// Execute scans the folder, builds the plan, runs the two-phase transaction
// and stores the backup record. The journal entry is best-effort.
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.scanner.Scan(c.Folder)
	if err != nil {
		return nil, err
	}

	plan, err := domain.BuildPlan(entries, c.Config)
	if err != nil {
		return nil, err
	}

	if err := c.executor.Apply(plan); err != nil {
		return nil, err
	}

	if err := c.backups.Store(plan); err != nil {
		return nil, fmt.Errorf("renamed %d files but failed to save backup record: %w", plan.Len(), err)
	}

	recordRun(c.journal, ports.RunModeRename, c.Folder, plan.Len())

	return &RenameResult{
		Plan:       plan,
		BackupPath: c.backups.Path(),
		Message:    fmt.Sprintf("Renamed %d files in %s", plan.Len(), c.Folder),
	}, nil
}

// recordRun journals a successful run. Journal failures are reported to
// stderr and otherwise ignored.
func recordRun(journal ports.RunJournal, mode, folder string, count int) {
	if journal == nil {
		return
	}
	rec := ports.RunRecord{
		RanAt:     time.Now(),
		Mode:      mode,
		Folder:    folder,
		FileCount: count,
	}
	if err := journal.Record(rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal run: %v\n", err)
	}
}
