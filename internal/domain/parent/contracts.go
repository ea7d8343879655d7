package parent

import (
	"context"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// GoalService manages parent goals.
type GoalService = records.Service[Goal]

// GoalRepository persists parent goals.
type GoalRepository = records.Repository[Goal]

// ProfileService reads and upserts the recovery profile.
type ProfileService interface {
	// Get returns the user's profile or ErrNotFound
	Get(ctx context.Context, userID string) (*HealthProfile, error)
	// Upsert creates or replaces the user's profile
	Upsert(ctx context.Context, profile *HealthProfile) (*HealthProfile, error)
}

// ProfileRepository persists recovery profiles keyed by user id.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*HealthProfile, error)
	Upsert(ctx context.Context, profile *HealthProfile) error
}
