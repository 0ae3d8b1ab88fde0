package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseTransform selects the casing applied to every name component
type CaseTransform int

const (
	CaseUnknown CaseTransform = iota
	CaseLower
	CaseUpper
	CaseTitle
)

func (c CaseTransform) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	default:
		return "unknown"
	}
}

// ParseCaseTransform maps a CLI token to its transform
func ParseCaseTransform(s string) (CaseTransform, error) {
	switch s {
	case "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	case "title":
		return CaseTitle, nil
	default:
		return CaseUnknown, &ConfigError{Field: "case", Message: fmt.Sprintf("%q is not one of lower, upper, title", s)}
	}
}

// Apply transforms a single name component
func (c CaseTransform) Apply(s string) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	default:
		return strings.ToLower(s)
	}
}

// AllowedSeparators are the characters accepted between name components
var AllowedSeparators = []string{"_", "-", "."}

// ValidSeparator reports whether sep is one of the allowed separators
func ValidSeparator(sep string) bool {
	for _, s := range AllowedSeparators {
		if sep == s {
			return true
		}
	}
	return false
}

// NamingConfig is the immutable rule set for one rename run
type NamingConfig struct {
	Order     OrderCriterion
	Prefix    string
	Separator string
	Start     int
	Padding   int
	Case      CaseTransform
	KeepStem  bool
	NoNumber  bool
}

// Validate checks every field and the keep/no-number combination. It is the
// authoritative check: the plan builder refuses to run on an invalid config.
func (c NamingConfig) Validate() error {
	if c.Order == OrderUnknown {
		return &ConfigError{Field: "order", Message: "order criterion is required"}
	}
	if c.Start <= 0 {
		return &ConfigError{Field: "start", Message: "start index must be greater than 0"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "padding", Message: "padding must be zero or a positive integer"}
	}
	if !ValidSeparator(c.Separator) {
		return &ConfigError{Field: "separator", Message: fmt.Sprintf("%q is not one of %s", c.Separator, strings.Join(AllowedSeparators, " "))}
	}
	if c.Case == CaseUnknown {
		return &ConfigError{Field: "case", Message: "case must be one of lower, upper, title"}
	}
	if !c.KeepStem && c.NoNumber {
		return &ConfigError{Field: "no-number", Message: "cannot suppress numbering without keeping the original stem"}
	}
	return nil
}

// targetName builds the new base name for entry at the given index: the
// component list (prefix, original stem, padded index) is case-transformed
// per component, joined with the separator, and the extension reattached.
func (c NamingConfig) targetName(entry FileEntry, index int) string {
	var parts []string

	if c.Prefix != "" {
		parts = append(parts, c.Prefix)
	}
	if c.KeepStem {
		parts = append(parts, entry.Stem())
	}
	if !c.NoNumber {
		// %0*d extends past the padding width instead of truncating
		parts = append(parts, fmt.Sprintf("%0*d", c.Padding, index))
	}

	for i, part := range parts {
		parts[i] = c.Case.Apply(part)
	}

	return strings.Join(parts, c.Separator) + entry.Ext()
}
