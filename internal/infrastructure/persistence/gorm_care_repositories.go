package persistence

import (
	"context"
	"errors"

	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormFeedingRepository creates a new GORM-based FeedingRepository implementation
func NewGormFeedingRepository(db *gorm.DB, logger logger.Logger) (care.FeedingRepository, error) {
	return newGormRepository[care.FeedingEntry, models.FeedingModel](db, logger, "feeding entry", listColumns{
		time:   "start_time",
		baby:   "baby_id",
		search: []string{"food", "notes"},
	}), nil
}

type gormSleepRepository struct {
	*gormRepository[care.SleepEntry, models.SleepModel, *models.SleepModel]
}

// NewGormSleepRepository creates a new GORM-based SleepRepository implementation
func NewGormSleepRepository(db *gorm.DB, logger logger.Logger) (care.SleepRepository, error) {
	return &gormSleepRepository{
		gormRepository: newGormRepository[care.SleepEntry, models.SleepModel](db, logger, "sleep entry", listColumns{
			time:   "start_time",
			baby:   "baby_id",
			search: []string{"location", "notes"},
		}),
	}, nil
}

func (r *gormSleepRepository) FindOngoing(ctx context.Context, babyID string) (*care.SleepEntry, error) {
	var model models.SleepModel
	err := r.db.WithContext(ctx).
		Where("baby_id = ? AND end_time IS NULL", babyID).
		Order("start_time desc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.NotFound("ongoing sleep for baby", babyID)
		}
		return nil, wrapError("failed to fetch ongoing sleep", err)
	}
	return model.ToDomain(), nil
}

// NewGormDiaperRepository creates a new GORM-based DiaperRepository implementation
func NewGormDiaperRepository(db *gorm.DB, logger logger.Logger) (care.DiaperRepository, error) {
	return newGormRepository[care.DiaperEntry, models.DiaperModel](db, logger, "diaper entry", listColumns{
		time:   "occurred_at",
		baby:   "baby_id",
		search: []string{"color", "consistency", "notes"},
	}), nil
}
