package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo/internal/errors"
	"todo/internal/validation"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewTask(t *testing.T) {
	tests := []struct {
		name             string
		title            string
		description      string
		due              time.Time
		priority         string
		expectedPriority Priority
	}{
		{"canonical priority", "Buy milk", "2% milk", date("2025-01-10"), "High", PriorityHigh},
		{"lowercase priority", "Buy milk", "2% milk", date("2025-01-10"), "medium", PriorityMedium},
		{"legacy alias", "Buy milk", "2% milk", date("2025-01-10"), "Alta", PriorityHigh},
		{"legacy alias mixed case", "Call bank", "mortgage", date("2025-03-01"), "bAjA", PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, tt.description, tt.due, tt.priority)
			require.NoError(t, err)
			require.NotNil(t, task)

			assert.NotEmpty(t, task.ID())
			assert.Equal(t, tt.title, task.Title())
			assert.Equal(t, tt.description, task.Description())
			assert.True(t, tt.due.Equal(task.DueDate()))
			assert.Equal(t, tt.expectedPriority, task.Priority())
			assert.False(t, task.IsCompleted())
		})
	}
}

func TestNewTask_NoLengthLimit(t *testing.T) {
	title := strings.Repeat("T", 1500)
	description := strings.Repeat("d", 5000)

	task, err := NewTask(title, description, date("2025-01-10"), "Low")
	require.NoError(t, err)
	assert.Equal(t, description, task.Description())

	restored, err := RestoreTask("id-1", title, description, date("2025-01-10"), "Low", false)
	require.NoError(t, err)
	assert.Equal(t, title, restored.Title())

	require.NoError(t, task.SetDescription(strings.Repeat("e", 10000)))
}

func TestNewTask_AssignsDistinctIDs(t *testing.T) {
	a, err := NewTask("a", "a", date("2025-01-10"), "Low")
	require.NoError(t, err)
	b, err := NewTask("a", "a", date("2025-01-10"), "Low")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewTask_InvalidData(t *testing.T) {
	due := date("2025-01-10")

	tests := []struct {
		name        string
		title       string
		description string
		due         time.Time
		priority    string
		badField    string
	}{
		{"empty title", "", "2% milk", due, "High", validation.FieldTitle},
		{"blank title", "   ", "2% milk", due, "High", validation.FieldTitle},
		{"empty description", "Buy milk", "", due, "High", validation.FieldDescription},
		{"blank description", "Buy milk", "\t", due, "High", validation.FieldDescription},
		{"missing due date", "Buy milk", "2% milk", time.Time{}, "High", validation.FieldDueDate},
		{"unknown priority", "Buy milk", "2% milk", due, "Urgent", validation.FieldPriority},
		{"empty priority", "Buy milk", "2% milk", due, "", validation.FieldPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, tt.description, tt.due, tt.priority)
			assert.Nil(t, task)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidData(err))

			var ve *validation.ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.badField, ve.Errors[0].Field)
		})
	}
}

func TestNewTask_NormalizesDueDate(t *testing.T) {
	local := time.Date(2025, 1, 10, 23, 30, 0, 0, time.FixedZone("X", 5*3600))
	task, err := NewTask("t", "d", local, "Low")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-10", FormatDate(task.DueDate()))
	assert.Equal(t, time.UTC, task.DueDate().Location())
}

func TestRestoreTask(t *testing.T) {
	task, err := RestoreTask("fixed-id", "t", "d", date("2025-01-10"), "Media", true)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", task.ID())
	assert.True(t, task.IsCompleted())
	assert.Equal(t, PriorityMedium, task.Priority())

	fresh, err := RestoreTask("", "t", "d", date("2025-01-10"), "Low", false)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.ID())

	_, err = RestoreTask("x", "", "d", date("2025-01-10"), "Low", false)
	assert.True(t, apperrors.IsInvalidData(err))
}

func TestTask_Setters(t *testing.T) {
	task, err := NewTask("Buy milk", "2% milk", date("2025-01-10"), "Alta")
	require.NoError(t, err)

	t.Run("valid values are applied", func(t *testing.T) {
		require.NoError(t, task.SetTitle("Buy oat milk"))
		require.NoError(t, task.SetDescription("barista edition"))
		require.NoError(t, task.SetDueDate(date("2025-02-01")))
		require.NoError(t, task.SetPriority("low"))

		assert.Equal(t, "Buy oat milk", task.Title())
		assert.Equal(t, "barista edition", task.Description())
		assert.Equal(t, "2025-02-01", FormatDate(task.DueDate()))
		assert.Equal(t, PriorityLow, task.Priority())
	})

	t.Run("invalid values leave the task unchanged", func(t *testing.T) {
		before := task.Clone()

		assert.True(t, apperrors.IsInvalidData(task.SetTitle(" ")))
		assert.True(t, apperrors.IsInvalidData(task.SetDescription("")))
		assert.True(t, apperrors.IsInvalidData(task.SetDueDate(time.Time{})))
		assert.True(t, apperrors.IsInvalidData(task.SetPriority("Invalid")))

		assert.True(t, before.Equal(task))
	})

	t.Run("completion flag", func(t *testing.T) {
		task.SetCompleted(true)
		assert.True(t, task.IsCompleted())
		task.SetCompleted(false)
		assert.False(t, task.IsCompleted())
	})
}

func TestTask_CloneAndEqual(t *testing.T) {
	task, err := NewTask("t", "d", date("2025-01-10"), "High")
	require.NoError(t, err)

	clone := task.Clone()
	assert.NotSame(t, task, clone)
	assert.True(t, task.Equal(clone))

	require.NoError(t, clone.SetTitle("other"))
	assert.False(t, task.Equal(clone))
	assert.Equal(t, "t", task.Title())

	var nilTask *Task
	assert.True(t, nilTask.Equal(nil))
	assert.False(t, task.Equal(nil))
}

func TestTask_String(t *testing.T) {
	task, err := RestoreTask("0123456789", "Buy milk", "2% milk", date("2025-01-10"), "Alta", false)
	require.NoError(t, err)

	assert.Equal(t, "Buy milk | 2% milk | Due: 2025-01-10 | Priority: High | Completed: no", task.String())

	task.SetCompleted(true)
	assert.Equal(t, "Buy milk | 2% milk | Due: 2025-01-10 | Priority: High | Completed: yes", task.String())
	assert.Equal(t, "01234567", task.ShortID())
}
