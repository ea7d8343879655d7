package persistence

import (
	"context"
	"errors"

	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (family.UserRepository, error) {
	return newGormRepository[family.User, models.UserModel](db, logger, "user", listColumns{
		time:   "created_at",
		search: []string{"name", "email"},
	}), nil
}

type gormBabyRepository struct {
	*gormRepository[family.Baby, models.BabyModel, *models.BabyModel]
}

// NewGormBabyRepository creates a new GORM-based BabyRepository implementation
func NewGormBabyRepository(db *gorm.DB, logger logger.Logger) (family.BabyRepository, error) {
	return &gormBabyRepository{
		gormRepository: newGormRepository[family.Baby, models.BabyModel](db, logger, "baby", listColumns{
			time:   "created_at",
			user:   "user_id",
			search: []string{"name", "notes"},
		}),
	}, nil
}

// babyOwned lists the tables keyed by baby_id, children first.
var babyOwned = []interface{}{
	&models.FeedingModel{},
	&models.SleepModel{},
	&models.DiaperModel{},
	&models.GrowthModel{},
	&models.VaccineModel{},
	&models.AppointmentModel{},
	&models.MilestoneModel{},
	&models.MedicationEntryModel{},
	&models.MedicationModel{},
}

// DeleteByID removes the baby together with every entry recorded for it
func (r *gormBabyRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		medications := tx.Model(&models.MedicationModel{}).Select("id").Where("baby_id = ?", id)
		if err := tx.Where("medication_id IN (?)", medications).Delete(&models.MedicationDoseModel{}).Error; err != nil {
			return wrapError("failed to delete medication doses", err)
		}

		for _, model := range babyOwned {
			if err := tx.Where("baby_id = ?", id).Delete(model).Error; err != nil {
				return wrapError("failed to delete baby entries", err)
			}
		}

		if err := tx.Model(&models.UserSettingsModel{}).
			Where("active_baby_id = ?", id).
			Update("active_baby_id", nil).Error; err != nil {
			return wrapError("failed to reset active baby", err)
		}

		return deleteRow(tx, &models.BabyModel{}, r.entity, id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted baby with id ", id, " and all of its entries")
	return nil
}

type gormSettingsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository implementation
func NewGormSettingsRepository(db *gorm.DB, logger logger.Logger) (family.SettingsRepository, error) {
	return &gormSettingsRepository{db: db, logger: logger}, nil
}

func (r *gormSettingsRepository) GetByUserID(ctx context.Context, userID string) (*family.UserSettings, error) {
	var model models.UserSettingsModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.NotFound("settings for user", userID)
		}
		return nil, wrapError("failed to fetch settings", err)
	}
	return model.ToDomain(), nil
}

// Upsert inserts the settings or overwrites the user's existing row, keeping its id and creation time
func (r *gormSettingsRepository) Upsert(ctx context.Context, settings *family.UserSettings) error {
	model := &models.UserSettingsModel{}
	model.FromDomain(settings)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"units", "time_zone", "language", "notifications", "active_baby_id", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return wrapError("failed to upsert settings", err)
	}

	r.logger.Info("Saved settings for user ", settings.UserID)
	return nil
}
