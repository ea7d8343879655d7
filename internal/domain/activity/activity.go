// Package activity keeps an audit trail of changes made to tracked records.
package activity

import (
	"context"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Log is one audit entry.
type Log struct {
	ID         string `validate:"required,uuid4"`
	UserID     *string
	BabyID     *string   `validate:"omitempty,uuid4"`
	Action     string    `validate:"required,oneof=created updated deleted"`
	EntityType string    `validate:"required,max=50"`
	EntityID   string    `validate:"required"`
	Summary    string    `validate:"max=500"`
	CreatedAt  time.Time `validate:"required"`
}

// Validate checks the struct tags.
func (l *Log) Validate() error { return records.Check(l) }

// Recorder appends entries to the activity log.
type Recorder interface {
	Record(ctx context.Context, entry *Log) error
}

// Repository persists and lists activity entries, newest first.
type Repository interface {
	Recorder
	List(ctx context.Context, query *records.Query) ([]*Log, error)
}

// Service exposes the activity log to the API.
type Service interface {
	List(ctx context.Context, query *records.Query) ([]*Log, error)
}
