package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"rinomina/internal/application"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

// DryRunResult contains the computed plan of a simulated run
type DryRunResult struct {
	Plan *domain.RenamePlan
}

// Listing renders the plan as one "old -> new" line per file, base names only
func (r *DryRunResult) Listing() string {
	var sb strings.Builder
	for _, pr := range r.Plan.Pairs() {
		fmt.Fprintf(&sb, "%s -> %s\n", filepath.Base(pr.Source), filepath.Base(pr.Target))
	}
	return sb.String()
}

// DryRunCommand computes and renders a plan without mutating the filesystem
// or the backup record
type DryRunCommand struct {
	scanner ports.FolderScanner

	Folder string
	Config domain.NamingConfig
}

// NewDryRunCommand creates a new DryRunCommand
func NewDryRunCommand(scanner ports.FolderScanner, folder string, cfg domain.NamingConfig) *DryRunCommand {
	return &DryRunCommand{
		scanner: scanner,
		Folder:  folder,
		Config:  cfg,
	}
}

// Validate checks the folder argument and the naming configuration
func (c *DryRunCommand) Validate() error {
	if strings.TrimSpace(c.Folder) == "" {
		return &application.ValidationError{
			Field:   "folder",
			Message: "target folder is required",
		}
	}
	return c.Config.Validate()
}

// Execute scans and builds the plan. Read-only.
func (c *DryRunCommand) Execute(ctx context.Context) (*DryRunResult, error) {
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

	return &DryRunResult{Plan: plan}, nil
}
