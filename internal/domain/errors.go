package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers branch on
var (
	ErrUnsupportedOrder = errors.New("unsupported order criterion")
	ErrBackupNotFound   = errors.New("backup record not found")
	ErrBackupCorrupt    = errors.New("backup record corrupt")
)

// ConfigError reports an invalid NamingConfig field or field combination
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SourceError reports a source folder that cannot be enumerated
type SourceError struct {
	Path   string
	Reason string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("invalid source %s: %s", e.Path, e.Reason)
}

// Rename phases for RenameError reporting
const (
	PhaseStage  = "stage"
	PhaseCommit = "commit"
)

// RenameError reports a single failed rename inside a transaction.
// Entries already staged or committed before the failure are left in place.
type RenameError struct {
	Phase string
	Path  string
	Err   error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename failed during %s of %s: %v", e.Phase, e.Path, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// DuplicateTargetError reports two plan entries resolving to the same target name
type DuplicateTargetError struct {
	Target  string
	Sources []string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("duplicate target %s for sources %v", e.Target, e.Sources)
}
