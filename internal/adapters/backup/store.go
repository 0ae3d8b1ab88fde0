package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"rinomina/internal/domain"
)

const recordFileName = "rename_plan_backup.json"

// Store persists rename plans as a JSON record under a storage root. The root
// is injected so tests can isolate state with a temporary directory.
type Store struct {
	root string
}

// NewStore creates a backup store rooted at root
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Path returns the record file location
func (s *Store) Path() string {
	return filepath.Join(s.root, recordFileName)
}

// Store writes the plan as an original→target JSON object, overwriting any
// previous record
func (s *Store) Store(plan *domain.RenamePlan) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create backup folder: %w", err)
	}

	data, err := json.MarshalIndent(plan.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup record: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write backup record: %w", err)
	}
	return nil
}

// Load reads the record back. A missing file fails with ErrBackupNotFound, an
// unparsable one with ErrBackupCorrupt. Entries are ordered by key so repeated
// loads iterate identically; the mapping itself carries no order.
func (s *Store) Load() (*domain.RenamePlan, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBackupNotFound, s.Path())
		}
		return nil, fmt.Errorf("failed to read backup record: %w", err)
	}

	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrBackupCorrupt, s.Path(), err)
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	plan := domain.NewRenamePlan()
	for _, k := range keys {
		if err := plan.Add(k, mapping[k]); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrBackupCorrupt, s.Path(), err)
		}
	}
	return plan, nil
}
