package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/pandamaske/biibii-sub002/internal/pkg/metrics"
)

type settingsService struct {
	repo     family.SettingsRepository
	babies   family.BabyRepository
	recorder activity.Recorder
	logger   logger.Logger
	now      func() time.Time
}

// NewSettingsService creates a new instance of SettingsService. recorder may be nil.
func NewSettingsService(repo family.SettingsRepository, babies family.BabyRepository, recorder activity.Recorder, logger logger.Logger) (family.SettingsService, error) {
	return &settingsService{repo: repo, babies: babies, recorder: recorder, logger: logger, now: time.Now}, nil
}

// Get returns the stored settings, or the defaults when the user never saved any
func (s *settingsService) Get(ctx context.Context, userID string) (*family.UserSettings, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	settings, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, records.ErrNotFound) {
		return family.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert validates and stores the settings, returning the stored row
func (s *settingsService) Upsert(ctx context.Context, settings *family.UserSettings) (*family.UserSettings, error) {
	if settings == nil {
		return nil, records.Invalidf("settings are required")
	}

	settings.Stamp(s.now().UTC())
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if settings.ActiveBabyID != nil {
		baby, err := s.babies.GetByID(ctx, *settings.ActiveBabyID)
		if errors.Is(err, records.ErrNotFound) {
			return nil, records.Invalidf("unknown baby %s", *settings.ActiveBabyID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up baby: %w", err)
		}
		if baby.UserID != settings.UserID {
			return nil, records.Invalidf("baby %s belongs to another user", baby.ID)
		}
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	metrics.RecordsMutated.WithLabelValues("settings", "upserted").Inc()

	stored, err := s.repo.GetByUserID(ctx, settings.UserID)
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, s.recorder, s.logger, s.now().UTC(), activity.ActionUpdated, "settings", stored.ID, &stored.UserID, stored.ActiveBabyID)
	return stored, nil
}

type profileService struct {
	repo     parent.ProfileRepository
	recorder activity.Recorder
	logger   logger.Logger
	now      func() time.Time
}

// NewProfileService creates a new instance of the parent health ProfileService. recorder may be nil.
func NewProfileService(repo parent.ProfileRepository, recorder activity.Recorder, logger logger.Logger) (parent.ProfileService, error) {
	return &profileService{repo: repo, recorder: recorder, logger: logger, now: time.Now}, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*parent.HealthProfile, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *profileService) Upsert(ctx context.Context, profile *parent.HealthProfile) (*parent.HealthProfile, error) {
	if profile == nil {
		return nil, records.Invalidf("profile is required")
	}

	profile.Stamp(s.now().UTC())
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save parent health profile: %w", err)
	}
	metrics.RecordsMutated.WithLabelValues("parent health profile", "upserted").Inc()

	stored, err := s.repo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, s.recorder, s.logger, s.now().UTC(), activity.ActionUpdated, "parent health profile", stored.ID, &stored.UserID, nil)
	return stored, nil
}

func validateUserID(userID string) error {
	q := &records.Query{UserID: userID}
	if userID == "" {
		return records.Invalidf("userId is required")
	}
	return q.Validate()
}
