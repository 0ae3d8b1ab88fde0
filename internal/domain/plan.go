package domain

import (
	"path/filepath"
)

// RenamePair is one plan entry: full original path to full target path
type RenamePair struct {
	Source string
	Target string
}

// RenamePlan maps original paths to target paths. Iteration follows the order
// the plan was built in, which is the order numbering was assigned in. Targets
// are unique: adding a second source for the same target fails.
type RenamePlan struct {
	pairs  []RenamePair
	owners map[string]string // target → source that claimed it
}

// NewRenamePlan returns an empty plan
func NewRenamePlan() *RenamePlan {
	return &RenamePlan{owners: make(map[string]string)}
}

// Add appends a source→target pair, rejecting duplicate targets
func (p *RenamePlan) Add(source, target string) error {
	if owner, exists := p.owners[target]; exists {
		return &DuplicateTargetError{Target: target, Sources: []string{owner, source}}
	}
	p.owners[target] = source
	p.pairs = append(p.pairs, RenamePair{Source: source, Target: target})
	return nil
}

// Pairs returns the plan entries in construction order
func (p *RenamePlan) Pairs() []RenamePair {
	return p.pairs
}

// Len returns the number of entries
func (p *RenamePlan) Len() int {
	return len(p.pairs)
}

// TargetFor returns the planned target for a source path
func (p *RenamePlan) TargetFor(source string) (string, bool) {
	for _, pr := range p.pairs {
		if pr.Source == source {
			return pr.Target, true
		}
	}
	return "", false
}

// ToMap returns the plan as a plain original→target map
func (p *RenamePlan) ToMap() map[string]string {
	m := make(map[string]string, len(p.pairs))
	for _, pr := range p.pairs {
		m[pr.Source] = pr.Target
	}
	return m
}

// Inverse returns the target→source plan, failing if the inversion would
// produce duplicate targets
func (p *RenamePlan) Inverse() (*RenamePlan, error) {
	inv := NewRenamePlan()
	for _, pr := range p.pairs {
		if err := inv.Add(pr.Target, pr.Source); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// BuildPlan validates cfg, orders entries by the configured criterion and
// assigns each a strictly increasing index starting at cfg.Start. Each target
// stays in the source file's directory with the extension unchanged. Targets
// are keyed by full original path, so files sharing a stem across extensions
// never collide in the plan.
func BuildPlan(entries []FileEntry, cfg NamingConfig) (*RenamePlan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ordered, err := SortEntries(entries, cfg.Order)
	if err != nil {
		return nil, err
	}

	plan := NewRenamePlan()
	index := cfg.Start

	for _, entry := range ordered {
		target := filepath.Join(filepath.Dir(entry.Path), cfg.targetName(entry, index))
		if err := plan.Add(entry.Path, target); err != nil {
			return nil, err
		}
		index++
	}

	return plan, nil
}
