package filesystem

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"rinomina/internal/domain"
)

// stageStatus tracks one entry through the two-phase protocol
type stageStatus int

const (
	statusPlanned stageStatus = iota
	statusStaged
	statusCommitted
)

// stagedRename is the per-entry state of an in-flight transaction
type stagedRename struct {
	Source string
	Temp   string
	Target string
	status stageStatus
}

// Executor applies rename plans with a two-phase protocol: every source is
// first renamed to a unique temporary sibling, then every temporary is renamed
// to its final target. Staging makes each target name available during commit
// even when the target set overlaps the source set (including full swaps).
type Executor struct{}

// NewExecutor creates a plan executor
func NewExecutor() *Executor {
	return &Executor{}
}

// Apply runs the transaction. On the first failed rename it stops with a
// RenameError naming the phase and path; entries already staged or committed
// are left in place. There is no rollback.
func (e *Executor) Apply(plan *domain.RenamePlan) error {
	stages := make([]stagedRename, 0, plan.Len())

	for _, pr := range plan.Pairs() {
		st := stagedRename{
			Source: pr.Source,
			Temp:   stagePath(pr.Source),
			Target: pr.Target,
		}
		if err := os.Rename(st.Source, st.Temp); err != nil {
			return &domain.RenameError{Phase: domain.PhaseStage, Path: st.Source, Err: err}
		}
		st.status = statusStaged
		stages = append(stages, st)
	}

	for i := range stages {
		st := &stages[i]
		if err := os.Rename(st.Temp, st.Target); err != nil {
			return &domain.RenameError{Phase: domain.PhaseCommit, Path: st.Temp, Err: err}
		}
		st.status = statusCommitted
	}

	return nil
}

// Revert applies the inverse of a previously recorded plan, restoring every
// renamed file to its original name with the same staging protocol.
func (e *Executor) Revert(record *domain.RenamePlan) error {
	inverse, err := record.Inverse()
	if err != nil {
		return fmt.Errorf("cannot invert backup record: %w", err)
	}
	return e.Apply(inverse)
}

// stagePath builds a unique temporary sibling name for a source file
func stagePath(source string) string {
	return fmt.Sprintf("%s.%s.staging", source, uuid.NewString())
}
