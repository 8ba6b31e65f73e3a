package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/registry"
	"todo/internal/repository/jsonfile"
)

type fileRegistry struct {
	dir           string
	pendingPath   string
	completedPath string
}

func newFileRegistry(t *testing.T) *fileRegistry {
	dir := t.TempDir()
	return &fileRegistry{
		dir:           dir,
		pendingPath:   filepath.Join(dir, "pending.json"),
		completedPath: filepath.Join(dir, "completed.json"),
	}
}

// open builds a Registry on fresh store instances, like a new process would.
func (f *fileRegistry) open(t *testing.T) *registry.Registry {
	pending, err := jsonfile.New(f.pendingPath)
	require.NoError(t, err)
	completed, err := jsonfile.New(f.completedPath)
	require.NoError(t, err)

	reg, err := registry.New(context.Background(), pending, completed,
		registry.WithLogger(logging.Discard().WithField("test", t.Name())))
	require.NoError(t, err)
	return reg
}

func newTask(t *testing.T, title, description, due, priority string) *domain.Task {
	d, err := domain.ParseDate(due)
	require.NoError(t, err)
	task, err := domain.NewTask(title, description, d, priority)
	require.NoError(t, err)
	return task
}

func TestScenario_AddThenFilterByPriority(t *testing.T) {
	f := newFileRegistry(t)
	reg := f.open(t)

	task := newTask(t, "Buy milk", "2% milk", "2025-01-10", "Alta")
	require.NoError(t, reg.Add(context.Background(), task))

	got := reg.FilterByPriority("alta")
	require.Len(t, got, 1)
	assert.Same(t, task, got[0])

	reloaded := f.open(t).Pending()
	require.Len(t, reloaded, 1)
	assert.True(t, task.Equal(reloaded[0]))
	assert.Equal(t, "Buy milk | 2% milk | Due: 2025-01-10 | Priority: High | Completed: no", reloaded[0].String())
}

func TestScenario_InvalidEditLeavesTaskAndFileUntouched(t *testing.T) {
	f := newFileRegistry(t)
	reg := f.open(t)
	ctx := context.Background()

	task := newTask(t, "Buy milk", "2% milk", "2025-01-10", "Alta")
	require.NoError(t, reg.Add(ctx, task))
	before, err := os.ReadFile(f.pendingPath)
	require.NoError(t, err)

	title, description, priority := "Buy bread", "Rye", "Invalid"
	err = reg.Edit(ctx, task, registry.EditRequest{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidData(err))

	assert.Equal(t, "Buy milk", task.Title())
	assert.Equal(t, "2% milk", task.Description())
	assert.Equal(t, "2025-01-10", domain.FormatDate(task.DueDate()))
	assert.Equal(t, domain.PriorityHigh, task.Priority())

	after, err := os.ReadFile(f.pendingPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestScenario_FilterByDueDatePicksExactDay(t *testing.T) {
	f := newFileRegistry(t)
	reg := f.open(t)
	ctx := context.Background()

	first := newTask(t, "Pay rent", "Transfer", "2025-01-10", "High")
	second := newTask(t, "Call mom", "Sunday call", "2025-01-11", "Low")
	require.NoError(t, reg.Add(ctx, first))
	require.NoError(t, reg.Add(ctx, second))

	due, err := domain.ParseDate("2025-01-10")
	require.NoError(t, err)
	got := reg.FilterByDueDate(due)
	require.Len(t, got, 1)
	assert.Same(t, first, got[0])
}

func TestScenario_CompleteSurvivesReload(t *testing.T) {
	f := newFileRegistry(t)
	reg := f.open(t)
	ctx := context.Background()

	keep := newTask(t, "Keep", "still pending", "2025-01-10", "Media")
	done := newTask(t, "Done", "finished", "2025-01-09", "Baja")
	require.NoError(t, reg.Add(ctx, keep))
	require.NoError(t, reg.Add(ctx, done))
	require.NoError(t, reg.Complete(ctx, done))

	reloaded := f.open(t)

	pending := reloaded.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, keep.ID(), pending[0].ID())
	assert.False(t, pending[0].IsCompleted())

	completed := reloaded.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID(), completed[0].ID())
	assert.True(t, completed[0].IsCompleted())
	assert.Equal(t, domain.PriorityLow, completed[0].Priority())

	_, err := os.Stat(f.completedPath)
	assert.NoError(t, err)
}

func TestScenario_DeleteSurvivesReload(t *testing.T) {
	f := newFileRegistry(t)
	reg := f.open(t)
	ctx := context.Background()

	a := newTask(t, "a", "a", "2025-01-10", "High")
	b := newTask(t, "b", "b", "2025-01-10", "High")
	require.NoError(t, reg.Add(ctx, a))
	require.NoError(t, reg.Add(ctx, b))
	require.NoError(t, reg.Complete(ctx, b))

	require.NoError(t, reg.Delete(ctx, a))
	require.NoError(t, reg.Delete(ctx, b))

	reloaded := f.open(t)
	assert.Empty(t, reloaded.Pending())
	assert.Empty(t, reloaded.Completed())
}

func TestScenario_CorruptDocumentStartsEmpty(t *testing.T) {
	f := newFileRegistry(t)
	require.NoError(t, os.WriteFile(f.pendingPath, []byte("{not json"), 0644))

	pending, err := jsonfile.New(f.pendingPath)
	require.NoError(t, err)
	completed, err := jsonfile.New(f.completedPath)
	require.NoError(t, err)

	reg, err := registry.New(context.Background(), pending, completed,
		registry.WithLogger(logging.Discard().WithField("test", t.Name())))
	require.Error(t, err)
	assert.True(t, apperrors.IsPersistenceError(err))
	require.NotNil(t, reg)
	assert.Empty(t, reg.Pending())

	// The next save overwrites the corrupt document with a valid one.
	require.NoError(t, reg.Add(context.Background(), newTask(t, "fresh", "start", "2025-01-10", "Low")))
	assert.Len(t, f.open(t).Pending(), 1)
}

func TestScenario_LongDescriptionSurvivesLoadAndAdd(t *testing.T) {
	f := newFileRegistry(t)
	long := strings.Repeat("step ", 400)
	content := `[
  {"id":"keep-1","title":"Keep me","description":"short","dueDate":"2025-01-10","priority":"High","completed":false},
  {"id":"keep-2","title":"Plan move","description":"` + long + `","dueDate":"2025-02-01","priority":"Media","completed":false}
]`
	require.NoError(t, os.WriteFile(f.pendingPath, []byte(content), 0644))

	reg := f.open(t)
	require.Len(t, reg.Pending(), 2)
	assert.Equal(t, long, reg.Pending()[1].Description())

	require.NoError(t, reg.Add(context.Background(), newTask(t, "New", "task", "2025-01-11", "Low")))

	reloaded := f.open(t).Pending()
	require.Len(t, reloaded, 3)
	assert.Equal(t, "Keep me", reloaded[0].Title())
	assert.Equal(t, long, reloaded[1].Description())
	assert.Equal(t, "New", reloaded[2].Title())
}
