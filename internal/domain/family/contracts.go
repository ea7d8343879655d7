package family

import (
	"context"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// UserService manages user accounts.
type UserService = records.Service[User]

// UserRepository persists users.
type UserRepository = records.Repository[User]

// BabyService manages babies.
type BabyService = records.Service[Baby]

// BabyRepository persists babies. DeleteByID also removes every entry of the baby.
type BabyRepository = records.Repository[Baby]

// SettingsService reads and upserts user settings.
type SettingsService interface {
	// Get returns the stored settings or the defaults when none were saved
	Get(ctx context.Context, userID string) (*UserSettings, error)
	// Upsert creates or replaces the user's settings
	Upsert(ctx context.Context, settings *UserSettings) (*UserSettings, error)
}

// SettingsRepository persists user settings keyed by user id.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserSettings, error)
	Upsert(ctx context.Context, settings *UserSettings) error
}
