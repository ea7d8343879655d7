package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

type activityService struct {
	repo   activity.Repository
	logger logger.Logger
}

// NewActivityService creates a new instance of the activity Service
func NewActivityService(repo activity.Repository, logger logger.Logger) (activity.Service, error) {
	return &activityService{repo: repo, logger: logger}, nil
}

// List returns a baby's or a user's recent activity, newest first
func (s *activityService) List(ctx context.Context, query *records.Query) ([]*activity.Log, error) {
	if query == nil || (query.BabyID == "" && query.UserID == "") {
		return nil, records.Invalidf("babyId or userId is required")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

// recordActivity appends an audit entry for a successful write. The actor in
// ctx wins over owner as the acting user. Failures are logged only.
func recordActivity(ctx context.Context, recorder activity.Recorder, log logger.Logger, at time.Time, action, entityType, entityID string, owner, babyID *string) {
	if recorder == nil {
		return
	}

	userID := owner
	if actor, ok := records.ActorFrom(ctx); ok {
		userID = &actor
	}

	entry := &activity.Log{
		ID:         uuid.NewString(),
		UserID:     userID,
		BabyID:     babyID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Summary:    fmt.Sprintf("%s %s", entityType, action),
		CreatedAt:  at,
	}
	if err := recorder.Record(ctx, entry); err != nil {
		log.Warn("failed to record activity for ", entityType, " ", entityID, ": ", err)
	}
}
