package persistence

import (
	"context"
	"errors"

	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewGormGoalRepository creates a new GORM-based GoalRepository implementation
func NewGormGoalRepository(db *gorm.DB, logger logger.Logger) (parent.GoalRepository, error) {
	return newGormRepository[parent.Goal, models.ParentGoalModel](db, logger, "parent goal", listColumns{
		time:   "created_at",
		user:   "user_id",
		search: []string{"title", "target"},
	}), nil
}

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (parent.ProfileRepository, error) {
	return &gormProfileRepository{db: db, logger: logger}, nil
}

func (r *gormProfileRepository) GetByUserID(ctx context.Context, userID string) (*parent.HealthProfile, error) {
	var model models.ParentHealthProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.NotFound("parent health profile for user", userID)
		}
		return nil, wrapError("failed to fetch parent health profile", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) Upsert(ctx context.Context, profile *parent.HealthProfile) error {
	model := &models.ParentHealthProfileModel{}
	model.FromDomain(profile)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"delivery_date", "delivery_type", "pain_level", "mood", "sleep_hours", "recovery_notes", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return wrapError("failed to upsert parent health profile", err)
	}

	r.logger.Info("Saved parent health profile for user ", profile.UserID)
	return nil
}
