package application

import "fmt"

// ValidationError represents an invalid flag value or flag combination,
// detected before any filesystem access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
