package ports

import "rinomina/internal/domain"

// PlanExecutor applies a rename plan to the real filesystem.
type PlanExecutor interface {
	// Apply renames every source to its target via two-phase staging.
	Apply(plan *domain.RenamePlan) error

	// Revert runs the same protocol on the inverted record, restoring
	// every renamed file to its original name.
	Revert(record *domain.RenamePlan) error
}
