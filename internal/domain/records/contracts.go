package records

import (
	"context"
)

// Patch applies a partial update. Implementations only touch the fields the
// caller supplied.
type Patch[E any] interface {
	Apply(e *E)
}

// PatchFunc adapts a function to Patch.
type PatchFunc[E any] func(e *E)

// Apply calls f(e).
func (f PatchFunc[E]) Apply(e *E) { f(e) }

// Repository persists one entity type.
type Repository[E any] interface {
	// Create inserts a new record
	Create(ctx context.Context, e *E) error
	// List returns records matching the query
	List(ctx context.Context, query *Query) ([]*E, error)
	// GetByID loads one record, returning ErrNotFound when missing
	GetByID(ctx context.Context, id string) (*E, error)
	// Update overwrites an existing record
	Update(ctx context.Context, e *E) error
	// DeleteByID removes one record, returning ErrNotFound when missing
	DeleteByID(ctx context.Context, id string) error
}

// Service is the application-facing CRUD contract for one entity type.
type Service[E any] interface {
	// Create stamps, validates and stores e, returning the stored record
	Create(ctx context.Context, e *E) (*E, error)
	// List returns records matching the query
	List(ctx context.Context, query *Query) ([]*E, error)
	// GetByID loads one record
	GetByID(ctx context.Context, id string) (*E, error)
	// Update loads the record, applies patch and stores the result
	Update(ctx context.Context, id string, patch Patch[E]) (*E, error)
	// DeleteByID removes one record
	DeleteByID(ctx context.Context, id string) error
}
