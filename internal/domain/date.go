package domain

import (
	"strings"
	"time"

	apperrors "todo/internal/errors"
	"todo/internal/validation"
)

// DateLayout is the ISO 8601 calendar date layout used everywhere a due date is rendered or parsed.
const DateLayout = validation.DateLayout

// NormalizeDate drops the clock part of t, keeping its calendar day, as midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	if err := taskValidator.ValidateDateString(validation.FieldDueDate, s); err != nil {
		return time.Time{}, apperrors.NewInvalidDataError("invalid date", err)
	}
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
