package commands

import (
	"context"

	"rinomina/internal/ports"
)

// HistoryResult contains journaled runs, newest first
type HistoryResult struct {
	Runs []ports.RunRecord
}

// HistoryCommand lists past rename and reverse runs from the journal
type HistoryCommand struct {
	journal ports.RunJournal

	Limit int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(journal ports.RunJournal, limit int) *HistoryCommand {
	return &HistoryCommand{journal: journal, Limit: limit}
}

// Execute queries the journal
func (c *HistoryCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	runs, err := c.journal.List(c.Limit)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{Runs: runs}, nil
}
