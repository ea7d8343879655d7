package health

import (
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// GrowthService manages growth measurements.
type GrowthService = records.Service[GrowthEntry]

// GrowthRepository persists growth measurements.
type GrowthRepository = records.Repository[GrowthEntry]

// VaccineService manages vaccine records.
type VaccineService = records.Service[VaccineEntry]

// VaccineRepository persists vaccine records.
type VaccineRepository = records.Repository[VaccineEntry]

// AppointmentService manages appointments.
type AppointmentService = records.Service[Appointment]

// AppointmentRepository persists appointments.
type AppointmentRepository = records.Repository[Appointment]

// MilestoneService manages developmental milestones.
type MilestoneService = records.Service[DevelopmentalMilestone]

// MilestoneRepository persists developmental milestones.
type MilestoneRepository = records.Repository[DevelopmentalMilestone]

// ProviderService manages healthcare providers.
type ProviderService = records.Service[HealthcareProvider]

// ProviderRepository persists healthcare providers.
type ProviderRepository = records.Repository[HealthcareProvider]

// MedicationService manages medications and their dose schedules.
type MedicationService = records.Service[Medication]

// MedicationRepository persists medications together with their doses.
type MedicationRepository = records.Repository[Medication]

// MedicationEntryService manages administered doses.
type MedicationEntryService = records.Service[MedicationEntry]

// MedicationEntryRepository persists administered doses.
type MedicationEntryRepository = records.Repository[MedicationEntry]
