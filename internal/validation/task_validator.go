package validation

import (
	"strings"
	"time"
)

// Field names reported in FieldError.Field.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldPriority    = "priority"
)

// TaskValidator checks the fields of a task against the entity rules
type TaskValidator struct {
	validator  *Validator
	priorities []string
}

// NewTaskValidator creates a task validator accepting the given priority names
func NewTaskValidator(priorities ...string) *TaskValidator {
	return &TaskValidator{
		validator:  NewValidator(),
		priorities: priorities,
	}
}

// ValidateText validates a required free-text field such as title or description.
// Only blank values are rejected; there is no length limit.
func (tv *TaskValidator) ValidateText(field, value string, ve *ValidationError) {
	if !tv.validator.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
	}
}

// ValidateDueDate validates that a due date is present
func (tv *TaskValidator) ValidateDueDate(due time.Time, ve *ValidationError) {
	if !tv.validator.IsPresentDate(due) {
		ve.AddRequiredError(FieldDueDate)
	}
}

// ValidatePriority validates a priority name, case-insensitively
func (tv *TaskValidator) ValidatePriority(priority string, ve *ValidationError) {
	if !tv.validator.IsNonEmptyString(priority) {
		ve.AddRequiredError(FieldPriority)
		return
	}
	if !tv.validator.IsOneOfFold(priority, tv.priorities) {
		ve.AddInvalidValueError(FieldPriority, priority, "must be one of "+strings.Join(tv.priorities, ", "))
	}
}

// ValidateTaskForCreation validates every field a new task needs
func (tv *TaskValidator) ValidateTaskForCreation(title, description string, due time.Time, priority string) error {
	validationError := NewValidationError()

	tv.ValidateText(FieldTitle, title, validationError)
	tv.ValidateText(FieldDescription, description, validationError)
	tv.ValidateDueDate(due, validationError)
	tv.ValidatePriority(priority, validationError)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDateString validates user-entered calendar dates
func (tv *TaskValidator) ValidateDateString(field, s string) error {
	if !tv.validator.IsValidDateString(s) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(field, s, "YYYY-MM-DD")
		return validationError
	}
	return nil
}
