package persistence

import (
	"context"

	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormGrowthRepository creates a new GORM-based GrowthRepository implementation
func NewGormGrowthRepository(db *gorm.DB, logger logger.Logger) (health.GrowthRepository, error) {
	return newGormRepository[health.GrowthEntry, models.GrowthModel](db, logger, "growth entry", listColumns{
		time:   "measured_at",
		baby:   "baby_id",
		search: []string{"notes"},
	}), nil
}

// NewGormVaccineRepository creates a new GORM-based VaccineRepository implementation.
// Vaccines are ordered by the date given, falling back to the due date.
func NewGormVaccineRepository(db *gorm.DB, logger logger.Logger) (health.VaccineRepository, error) {
	return newGormRepository[health.VaccineEntry, models.VaccineModel](db, logger, "vaccine entry", listColumns{
		time:   "COALESCE(administered_at, due_at, created_at)",
		baby:   "baby_id",
		search: []string{"name", "lot_number", "notes"},
	}), nil
}

// NewGormAppointmentRepository creates a new GORM-based AppointmentRepository implementation
func NewGormAppointmentRepository(db *gorm.DB, logger logger.Logger) (health.AppointmentRepository, error) {
	return newGormRepository[health.Appointment, models.AppointmentModel](db, logger, "appointment", listColumns{
		time:   "scheduled_at",
		baby:   "baby_id",
		search: []string{"title", "location", "notes"},
	}), nil
}

// NewGormMilestoneRepository creates a new GORM-based MilestoneRepository implementation
func NewGormMilestoneRepository(db *gorm.DB, logger logger.Logger) (health.MilestoneRepository, error) {
	return newGormRepository[health.DevelopmentalMilestone, models.MilestoneModel](db, logger, "milestone", listColumns{
		time:   "created_at",
		baby:   "baby_id",
		search: []string{"title", "notes"},
	}), nil
}

// NewGormProviderRepository creates a new GORM-based ProviderRepository implementation
func NewGormProviderRepository(db *gorm.DB, logger logger.Logger) (health.ProviderRepository, error) {
	return newGormRepository[health.HealthcareProvider, models.ProviderModel](db, logger, "healthcare provider", listColumns{
		time:   "created_at",
		user:   "user_id",
		search: []string{"name", "specialty"},
	}), nil
}

// NewGormMedicationEntryRepository creates a new GORM-based MedicationEntryRepository implementation
func NewGormMedicationEntryRepository(db *gorm.DB, logger logger.Logger) (health.MedicationEntryRepository, error) {
	return newGormRepository[health.MedicationEntry, models.MedicationEntryModel](db, logger, "medication entry", listColumns{
		time:   "given_at",
		baby:   "baby_id",
		search: []string{"notes"},
	}), nil
}

type gormMedicationRepository struct {
	*gormRepository[health.Medication, models.MedicationModel, *models.MedicationModel]
}

// NewGormMedicationRepository creates a new GORM-based MedicationRepository implementation.
// Doses are always loaded and written together with their medication.
func NewGormMedicationRepository(db *gorm.DB, logger logger.Logger) (health.MedicationRepository, error) {
	return &gormMedicationRepository{
		gormRepository: newGormRepository[health.Medication, models.MedicationModel](db, logger, "medication", listColumns{
			time:   "start_date",
			baby:   "baby_id",
			search: []string{"name", "notes"},
		}).withPreload("Doses", "time_of_day"),
	}, nil
}

// Update overwrites the medication and replaces its dose schedule
func (r *gormMedicationRepository) Update(ctx context.Context, med *health.Medication) error {
	model := &models.MedicationModel{}
	model.FromDomain(med)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, model, r.entity); err != nil {
			return err
		}
		if err := tx.Where("medication_id = ?", med.ID).Delete(&models.MedicationDoseModel{}).Error; err != nil {
			return wrapError("failed to clear medication doses", err)
		}
		if len(model.Doses) == 0 {
			return nil
		}
		if err := tx.Create(&model.Doses).Error; err != nil {
			return wrapError("failed to store medication doses", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated medication with id ", med.ID, " and ", len(med.Doses), " doses")
	return nil
}

// DeleteByID removes the medication, its doses and the doses given from it
func (r *gormMedicationRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medication_id = ?", id).Delete(&models.MedicationDoseModel{}).Error; err != nil {
			return wrapError("failed to delete medication doses", err)
		}
		if err := tx.Where("medication_id = ?", id).Delete(&models.MedicationEntryModel{}).Error; err != nil {
			return wrapError("failed to delete medication entries", err)
		}
		return deleteRow(tx, &models.MedicationModel{}, r.entity, id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted medication with id ", id)
	return nil
}
