package validation

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used on input and on disk.
const DateLayout = "2006-01-02"

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsPresentDate checks that a date has been set.
// The zero time.Time stands for "no date", so 0001-01-01 is never present.
func (v *Validator) IsPresentDate(t time.Time) bool {
	return !t.IsZero()
}

// IsValidDateString checks that s is a YYYY-MM-DD calendar date
func (v *Validator) IsValidDateString(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}

// IsOneOfFold checks s against allowed values, ignoring case and surrounding space
func (v *Validator) IsOneOfFold(s string, allowed []string) bool {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}
