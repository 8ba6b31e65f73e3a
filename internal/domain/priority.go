package domain

import (
	"strings"

	apperrors "todo/internal/errors"
	"todo/internal/validation"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// priorityAliases maps every accepted spelling, lowercased, to its canonical value.
// Alta/Media/Baja are accepted so documents written by the earlier tool still load.
var priorityAliases = map[string]Priority{
	"high":   PriorityHigh,
	"medium": PriorityMedium,
	"low":    PriorityLow,
	"alta":   PriorityHigh,
	"media":  PriorityMedium,
	"baja":   PriorityLow,
}

// Priorities lists the canonical priorities, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// acceptedPriorityNames lists the canonical names first, then the legacy aliases.
func acceptedPriorityNames() []string {
	names := make([]string, 0, len(priorityAliases))
	for _, p := range Priorities() {
		names = append(names, p.String())
	}
	return append(names, "Alta", "Media", "Baja")
}

// ParsePriority normalizes a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	ve := validation.NewValidationError()
	taskValidator.ValidatePriority(s, ve)
	return "", apperrors.NewInvalidDataError("invalid priority", ve)
}

// String returns the canonical name.
func (p Priority) String() string {
	return string(p)
}

// Matches reports whether s names this priority, ignoring case and aliases.
func (p Priority) Matches(s string) bool {
	other, err := ParsePriority(s)
	return err == nil && other == p
}
