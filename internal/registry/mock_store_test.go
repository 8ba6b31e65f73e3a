package registry

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo/internal/domain"
)

// MockStore is a testify mock of Store
type MockStore struct {
	mock.Mock
	location string
}

func newMockStore(location string) *MockStore {
	return &MockStore{location: location}
}

func (m *MockStore) Load(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, tasks []*domain.Task) error {
	snapshot := make([]*domain.Task, len(tasks))
	copy(snapshot, tasks)
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockStore) Location() string {
	return m.location
}

// memoryStore keeps detached copies of the saved collection, like a real file would.
type memoryStore struct {
	location string
	saved    []*domain.Task
	saves    int
	saveErr  error
	loadErr  error
}

func (s *memoryStore) Load(ctx context.Context) ([]*domain.Task, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]*domain.Task, 0, len(s.saved))
	for _, t := range s.saved {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, tasks []*domain.Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.saved = make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		s.saved = append(s.saved, t.Clone())
	}
	return nil
}

func (s *memoryStore) Location() string {
	return s.location
}
