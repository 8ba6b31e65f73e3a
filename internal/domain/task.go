package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "todo/internal/errors"
	"todo/internal/validation"
)

var taskValidator = validation.NewTaskValidator(acceptedPriorityNames()...)

// Task is a titled, described, dated and prioritized unit of work.
// Fields are only reachable through methods so a Task can never hold a blank
// title or description, a missing due date or an unknown priority.
type Task struct {
	id          string
	title       string
	description string
	dueDate     time.Time
	priority    Priority
	completed   bool
}

// NewTask validates its arguments and returns a pending task with a fresh ID.
// All failing fields are reported together in one InvalidData error.
func NewTask(title, description string, dueDate time.Time, priority string) (*Task, error) {
	return build(uuid.NewString(), title, description, dueDate, priority, false)
}

// RestoreTask rebuilds a task read back from a store. An empty id gets a fresh one.
// The same rules as NewTask apply.
func RestoreTask(id, title, description string, dueDate time.Time, priority string, completed bool) (*Task, error) {
	if id == "" {
		id = uuid.NewString()
	}
	return build(id, title, description, dueDate, priority, completed)
}

func build(id, title, description string, dueDate time.Time, priority string, completed bool) (*Task, error) {
	if err := taskValidator.ValidateTaskForCreation(title, description, dueDate, priority); err != nil {
		return nil, apperrors.NewInvalidDataError("invalid task", err)
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	return &Task{
		id:          id,
		title:       title,
		description: description,
		dueDate:     NormalizeDate(dueDate),
		priority:    p,
		completed:   completed,
	}, nil
}

func (t *Task) ID() string          { return t.id }
func (t *Task) Title() string       { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) DueDate() time.Time  { return t.dueDate }
func (t *Task) Priority() Priority  { return t.priority }
func (t *Task) IsCompleted() bool   { return t.completed }

// SetCompleted flips the completion flag; it never fails.
func (t *Task) SetCompleted(done bool) { t.completed = done }

// SetTitle replaces the title. A blank title is rejected and leaves the task unchanged.
func (t *Task) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	t.title = title
	return nil
}

// SetDescription replaces the description under the same rule as SetTitle.
func (t *Task) SetDescription(description string) error {
	if err := ValidateDescription(description); err != nil {
		return err
	}
	t.description = description
	return nil
}

// SetDueDate replaces the due date; the zero time is rejected.
func (t *Task) SetDueDate(due time.Time) error {
	if err := ValidateDueDate(due); err != nil {
		return err
	}
	t.dueDate = NormalizeDate(due)
	return nil
}

// SetPriority re-validates against High, Medium and Low.
func (t *Task) SetPriority(priority string) error {
	p, err := ParsePriority(priority)
	if err != nil {
		return err
	}
	t.priority = p
	return nil
}

// ValidateTitle checks a candidate title without touching any task.
func ValidateTitle(title string) error {
	return validateField(func(ve *validation.ValidationError) {
		taskValidator.ValidateText(validation.FieldTitle, title, ve)
	})
}

// ValidateDescription checks a candidate description without touching any task.
func ValidateDescription(description string) error {
	return validateField(func(ve *validation.ValidationError) {
		taskValidator.ValidateText(validation.FieldDescription, description, ve)
	})
}

// ValidateDueDate checks a candidate due date without touching any task.
func ValidateDueDate(due time.Time) error {
	return validateField(func(ve *validation.ValidationError) {
		taskValidator.ValidateDueDate(due, ve)
	})
}

func validateField(check func(*validation.ValidationError)) error {
	ve := validation.NewValidationError()
	check(ve)
	if ve.HasErrors() {
		return apperrors.NewInvalidDataError("invalid task", ve)
	}
	return nil
}

// Clone returns a detached copy carrying the same ID.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Equal compares every field, ID included.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.id == other.id &&
		t.title == other.title &&
		t.description == other.description &&
		t.dueDate.Equal(other.dueDate) &&
		t.priority == other.priority &&
		t.completed == other.completed
}

// ShortID returns the first eight characters of the ID for display.
func (t *Task) ShortID() string {
	if len(t.id) <= 8 {
		return t.id
	}
	return t.id[:8]
}

// String returns a one-line summary for display purposes.
func (t *Task) String() string {
	done := "no"
	if t.completed {
		done = "yes"
	}
	return fmt.Sprintf("%s | %s | Due: %s | Priority: %s | Completed: %s",
		strings.TrimSpace(t.title), strings.TrimSpace(t.description), FormatDate(t.dueDate), t.priority, done)
}
