package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// NewMedicationEntryService creates a MedicationEntryService that only accepts
// doses of medications prescribed to the same baby
func NewMedicationEntryService(repo health.MedicationEntryRepository, medications health.MedicationRepository, logger logger.Logger, opts ...EntryOption) (health.MedicationEntryService, error) {
	if medications == nil {
		return nil, fmt.Errorf("medication repository is required")
	}

	svc, err := newEntryService[health.MedicationEntry]("medication entry", repo, logger, opts...)
	if err != nil {
		return nil, err
	}

	svc.checks = append(svc.checks, func(ctx context.Context, e *health.MedicationEntry) error {
		med, err := medications.GetByID(ctx, e.MedicationID)
		if errors.Is(err, records.ErrNotFound) {
			return records.Invalidf("unknown medication %s", e.MedicationID)
		}
		if err != nil {
			return fmt.Errorf("failed to look up medication: %w", err)
		}
		if med.BabyID != e.BabyID {
			return records.Invalidf("medication %s belongs to another baby", e.MedicationID)
		}
		return nil
	})

	return svc, nil
}
