package registry

import (
	"context"

	"todo/internal/domain"
)

// Store is the durable home of one task collection. The collection is the
// unit of serialization: Save replaces everything previously saved.
//
// Load must return an empty, non-nil slice when nothing has been saved yet.
// Both methods report I/O failures as persistence errors.
type Store interface {
	Load(ctx context.Context) ([]*domain.Task, error)
	Save(ctx context.Context, tasks []*domain.Task) error
	Location() string
}
