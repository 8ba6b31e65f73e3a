package registry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/logging"
)

// Registry owns the pending and completed task collections. It is the only
// entry point for mutating tasks and persists every mutation through its
// stores. A Registry is not safe for concurrent use.
type Registry struct {
	pending   []*domain.Task
	completed []*domain.Task

	pendingStore   Store
	completedStore Store

	log *logrus.Entry
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *logrus.Entry) Option {
	return func(r *Registry) { r.log = l }
}

// New loads both collections. A collection that fails to load starts empty;
// the failure is returned alongside a Registry that is still fully usable.
func New(ctx context.Context, pendingStore, completedStore Store, opts ...Option) (*Registry, error) {
	r := &Registry{
		pendingStore:   pendingStore,
		completedStore: completedStore,
		log:            logrus.NewEntry(logging.Default()),
	}
	for _, opt := range opts {
		opt(r)
	}

	var loadErrs []error

	pending, err := pendingStore.Load(ctx)
	if err != nil {
		r.reportFailure("load", pendingStore, err)
		loadErrs = append(loadErrs, err)
		pending = nil
	}
	completed, err := completedStore.Load(ctx)
	if err != nil {
		r.reportFailure("load", completedStore, err)
		loadErrs = append(loadErrs, err)
		completed = nil
	}

	r.pending = make([]*domain.Task, 0, len(pending))
	r.pending = append(r.pending, pending...)
	r.completed = make([]*domain.Task, 0, len(completed))
	r.completed = append(r.completed, completed...)

	logging.Debugf("registry loaded %d pending and %d completed tasks\n", len(r.pending), len(r.completed))

	return r, errors.Join(loadErrs...)
}

// Add appends task to the pending collection and persists it. If saving
// fails the task stays added in memory and the error is returned.
func (r *Registry) Add(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return apperrors.NewInvalidInputError("task", nil, "task must not be nil")
	}
	if r.owns(task) {
		return apperrors.NewInvalidInputError("task", task.ID(), "task is already registered")
	}

	r.pending = append(r.pending, task)
	return r.persist(ctx, r.pendingStore, r.pending)
}

// EditRequest carries the new values for Edit. A nil field, an empty
// string or a zero date leaves the corresponding value unchanged.
type EditRequest struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
}

// Edit validates every provided value before applying any of them, so an
// invalid value changes nothing and nothing is persisted. The collection
// holding the task is saved afterwards.
func (r *Registry) Edit(ctx context.Context, task *domain.Task, req EditRequest) error {
	if task == nil {
		return apperrors.NewInvalidInputError("task", nil, "task must not be nil")
	}
	inPending := indexOf(r.pending, task) >= 0
	if !inPending && indexOf(r.completed, task) < 0 {
		return apperrors.NewNotFoundError("task", task.ID())
	}

	title, hasTitle := provided(req.Title)
	description, hasDescription := provided(req.Description)
	priority, hasPriority := provided(req.Priority)
	hasDue := req.DueDate != nil && !req.DueDate.IsZero()

	if hasTitle {
		if err := domain.ValidateTitle(title); err != nil {
			return err
		}
	}
	if hasDescription {
		if err := domain.ValidateDescription(description); err != nil {
			return err
		}
	}
	if hasPriority {
		if _, err := domain.ParsePriority(priority); err != nil {
			return err
		}
	}

	// Everything is valid; setters below cannot fail.
	if hasTitle {
		_ = task.SetTitle(title)
	}
	if hasDescription {
		_ = task.SetDescription(description)
	}
	if hasDue {
		_ = task.SetDueDate(*req.DueDate)
	}
	if hasPriority {
		_ = task.SetPriority(priority)
	}

	if inPending {
		return r.persist(ctx, r.pendingStore, r.pending)
	}
	return r.persist(ctx, r.completedStore, r.completed)
}

// Delete removes task from whichever collection holds it and persists the
// pending collection, plus the completed one when it held the task.
func (r *Registry) Delete(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return apperrors.NewInvalidInputError("task", nil, "task must not be nil")
	}

	var inPending, inCompleted bool
	r.pending, inPending = remove(r.pending, task)
	r.completed, inCompleted = remove(r.completed, task)
	if !inPending && !inCompleted {
		return apperrors.NewNotFoundError("task", task.ID())
	}

	err := r.persist(ctx, r.pendingStore, r.pending)
	if inCompleted {
		err = errors.Join(err, r.persist(ctx, r.completedStore, r.completed))
	}
	return err
}

// Complete marks a pending task done and moves it to the end of the
// completed collection, then persists pending followed by completed.
// Completing an already completed task is a no-op.
func (r *Registry) Complete(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return apperrors.NewInvalidInputError("task", nil, "task must not be nil")
	}
	if indexOf(r.completed, task) >= 0 {
		return nil
	}

	var found bool
	r.pending, found = remove(r.pending, task)
	if !found {
		return apperrors.NewNotFoundError("task", task.ID())
	}

	task.SetCompleted(true)
	r.completed = append(r.completed, task)

	return errors.Join(
		r.persist(ctx, r.pendingStore, r.pending),
		r.persist(ctx, r.completedStore, r.completed),
	)
}

// Reopen moves a completed task back to the end of the pending collection.
// Reopening a pending task is a no-op.
func (r *Registry) Reopen(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return apperrors.NewInvalidInputError("task", nil, "task must not be nil")
	}
	if indexOf(r.pending, task) >= 0 {
		return nil
	}

	var found bool
	r.completed, found = remove(r.completed, task)
	if !found {
		return apperrors.NewNotFoundError("task", task.ID())
	}

	task.SetCompleted(false)
	r.pending = append(r.pending, task)

	return errors.Join(
		r.persist(ctx, r.completedStore, r.completed),
		r.persist(ctx, r.pendingStore, r.pending),
	)
}

// Pending returns the pending tasks in insertion order.
func (r *Registry) Pending() []*domain.Task {
	return cloneSlice(r.pending)
}

// Completed returns the completed tasks in completion order.
func (r *Registry) Completed() []*domain.Task {
	return cloneSlice(r.completed)
}

// Find returns the task with the given ID from either collection.
func (r *Registry) Find(id string) (*domain.Task, error) {
	for _, t := range r.all() {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, apperrors.NewNotFoundError("task", id)
}

// FindByPrefix resolves a shortened ID. The prefix must match exactly one task.
func (r *Registry) FindByPrefix(prefix string) (*domain.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, apperrors.NewInvalidInputError("id", prefix, "id must not be empty")
	}

	if t, err := r.Find(prefix); err == nil {
		return t, nil
	}

	var match *domain.Task
	for _, t := range r.all() {
		if strings.HasPrefix(t.ID(), prefix) {
			if match != nil {
				return nil, apperrors.NewInvalidInputError("id", prefix, "prefix matches more than one task")
			}
			match = t
		}
	}
	if match == nil {
		return nil, apperrors.NewNotFoundError("task", prefix)
	}
	return match, nil
}

func (r *Registry) all() []*domain.Task {
	all := make([]*domain.Task, 0, len(r.pending)+len(r.completed))
	all = append(all, r.pending...)
	return append(all, r.completed...)
}

func (r *Registry) owns(task *domain.Task) bool {
	for _, t := range r.all() {
		if t == task || t.ID() == task.ID() {
			return true
		}
	}
	return false
}

func (r *Registry) persist(ctx context.Context, store Store, tasks []*domain.Task) error {
	if err := store.Save(ctx, tasks); err != nil {
		r.reportFailure("save", store, err)
		return err
	}
	return nil
}

func (r *Registry) reportFailure(operation string, store Store, err error) {
	if !apperrors.ShouldLogError(err) {
		return
	}
	fields := logrus.Fields{
		"operation": operation,
		"location":  store.Location(),
		"code":      apperrors.GetErrorCode(err),
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		if record, ok := appErr.GetContext("record"); ok {
			fields["record"] = record
		}
	}
	r.log.WithFields(fields).WithError(err).Warn("task store failure")
}

func provided(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func indexOf(tasks []*domain.Task, task *domain.Task) int {
	for i, t := range tasks {
		if t == task {
			return i
		}
	}
	return -1
}

func remove(tasks []*domain.Task, task *domain.Task) ([]*domain.Task, bool) {
	i := indexOf(tasks, task)
	if i < 0 {
		return tasks, false
	}
	return append(tasks[:i], tasks[i+1:]...), true
}

func cloneSlice(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
