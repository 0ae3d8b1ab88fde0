package application

// ValidateKeepNoNumber rejects suppressing numbering without keeping the
// original stem: the result would carry neither a stem nor a number, so every
// file without a distinct prefix would collide.
func ValidateKeepNoNumber(keep, noNumber bool) error {
	if !keep && noNumber {
		return &ValidationError{
			Field:   "no-number",
			Message: "'--no-number' requires '--keep'",
		}
	}
	return nil
}

// ValidateReverseExclusive rejects --reverse-run combined with any other
// non-default renaming option. othersSet must report whether any of prefix,
// separator, start, padding, case, keep, no-number or dry-run deviates from
// its default.
func ValidateReverseExclusive(reverse, othersSet bool) error {
	if reverse && othersSet {
		return &ValidationError{
			Field:   "reverse-run",
			Message: "'--reverse-run' must be invoked alone, without other renaming options",
		}
	}
	return nil
}

// ValidateDryReverse rejects --dry-run together with --reverse-run
func ValidateDryReverse(dry, reverse bool) error {
	if dry && reverse {
		return &ValidationError{
			Field:   "dry-run",
			Message: "'--dry-run' and '--reverse-run' cannot be used together",
		}
	}
	return nil
}
