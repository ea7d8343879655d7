package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// NewSleepService creates a SleepService that allows at most one ongoing sleep per baby
func NewSleepService(repo care.SleepRepository, logger logger.Logger, opts ...EntryOption) (care.SleepService, error) {
	svc, err := newEntryService[care.SleepEntry]("sleep", repo, logger, opts...)
	if err != nil {
		return nil, err
	}

	svc.checks = append(svc.checks, func(ctx context.Context, s *care.SleepEntry) error {
		if !s.Ongoing() {
			return nil
		}
		current, err := repo.FindOngoing(ctx, s.BabyID)
		if errors.Is(err, records.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up ongoing sleep: %w", err)
		}
		if current.ID != s.ID {
			return fmt.Errorf("baby %s is already asleep since %s: %w",
				s.BabyID, current.StartTime.Format("15:04"), records.ErrConflict)
		}
		return nil
	})

	return svc, nil
}
