package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// BaseModel holds the columns shared by every table. Timestamps are owned by
// the application layer, so GORM must not overwrite them.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// GetID returns the primary key
func (b *BaseModel) GetID() string { return b.ID }

func (b BaseModel) toDomain() records.Base {
	return records.Base{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func fromBase(b records.Base) BaseModel {
	return BaseModel{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

// All returns every model, in dependency order, for schema migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&BabyModel{},
		&UserSettingsModel{},
		&FeedingModel{},
		&SleepModel{},
		&DiaperModel{},
		&GrowthModel{},
		&VaccineModel{},
		&ProviderModel{},
		&AppointmentModel{},
		&MilestoneModel{},
		&MedicationModel{},
		&MedicationDoseModel{},
		&MedicationEntryModel{},
		&ParentHealthProfileModel{},
		&ParentGoalModel{},
		&ActivityLogModel{},
	}
}
