package application

import (
	"errors"
	"testing"
)

func TestValidateKeepNoNumber(t *testing.T) {
	tests := []struct {
		name     string
		keep     bool
		noNumber bool
		wantErr  bool
	}{
		{"both unset", false, false, false},
		{"keep only", true, false, false},
		{"keep with no-number", true, true, false},
		{"no-number without keep", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeepNoNumber(tt.keep, tt.noNumber)
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReverseExclusive(t *testing.T) {
	if err := ValidateReverseExclusive(true, false); err != nil {
		t.Errorf("reverse alone should be legal: %v", err)
	}
	if err := ValidateReverseExclusive(false, true); err != nil {
		t.Errorf("options without reverse should be legal: %v", err)
	}
	if err := ValidateReverseExclusive(true, true); err == nil {
		t.Error("expected error for reverse with other options")
	}
}

func TestValidateDryReverse(t *testing.T) {
	if err := ValidateDryReverse(true, false); err != nil {
		t.Errorf("dry-run alone should be legal: %v", err)
	}
	if err := ValidateDryReverse(true, true); err == nil {
		t.Error("expected error for dry-run with reverse-run")
	}
}
