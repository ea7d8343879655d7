package persistence

import (
	"context"
	"fmt"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormActivityRepository creates a new GORM-based activity Repository implementation
func NewGormActivityRepository(db *gorm.DB, logger logger.Logger) (activity.Repository, error) {
	return &gormActivityRepository{db: db, logger: logger}, nil
}

func (r *gormActivityRepository) Record(ctx context.Context, entry *activity.Log) error {
	model := &models.ActivityLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError("failed to record activity", err)
	}

	r.logger.Debug("Recorded ", entry.Action, " ", entry.EntityType, " ", entry.EntityID)
	return nil
}

// List returns entries newest first, filtered by baby and/or user
func (r *gormActivityRepository) List(ctx context.Context, query *records.Query) ([]*activity.Log, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ActivityLogModel{})
	if query.BabyID != "" {
		dbQuery = dbQuery.Where("baby_id = ?", query.BabyID)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at <= ?", query.To)
	}

	order := "created_at " + query.EffectiveSortOrder() + ", id " + query.EffectiveSortOrder()
	dbQuery = dbQuery.Order(order).Limit(query.EffectiveLimit())
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.ActivityLogModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, wrapError("failed to fetch activity", err)
	}

	entries := make([]*activity.Log, len(modelList))
	for i, model := range modelList {
		entries[i] = model.ToDomain()
	}
	return entries, nil
}
