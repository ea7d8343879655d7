package app

import (
	"fmt"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// Repositories groups the storage dependencies of the application services
type Repositories struct {
	Users    family.UserRepository
	Babies   family.BabyRepository
	Settings family.SettingsRepository

	Feedings care.FeedingRepository
	Sleeps   care.SleepRepository
	Diapers  care.DiaperRepository

	Growth            health.GrowthRepository
	Vaccines          health.VaccineRepository
	Appointments      health.AppointmentRepository
	Milestones        health.MilestoneRepository
	Providers         health.ProviderRepository
	Medications       health.MedicationRepository
	MedicationEntries health.MedicationEntryRepository

	Goals    parent.GoalRepository
	Profiles parent.ProfileRepository

	Activity activity.Repository
}

// Services groups every application service exposed by the API
type Services struct {
	Users    family.UserService
	Babies   family.BabyService
	Settings family.SettingsService

	Feedings care.FeedingService
	Sleeps   care.SleepService
	Diapers  care.DiaperService

	Growth            health.GrowthService
	Vaccines          health.VaccineService
	Appointments      health.AppointmentService
	Milestones        health.MilestoneService
	Providers         health.ProviderService
	Medications       health.MedicationService
	MedicationEntries health.MedicationEntryService

	Goals    parent.GoalService
	Profiles parent.ProfileService

	Activity activity.Service
	LiveData livedata.Service
}

// NewServices wires every service on top of repos. cache may be nil to disable live data caching.
func NewServices(repos *Repositories, cache livedata.Cache, logger logger.Logger) (*Services, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	tracked := []EntryOption{WithActivity(repos.Activity)}
	if cache != nil {
		tracked = append(tracked, WithLiveDataCache(cache))
	}
	babyScoped := append([]EntryOption{WithBabyCheck(repos.Babies)}, tracked...)

	s := &Services{}
	var err error

	if s.Users, err = NewEntryService[family.User]("user", repos.Users, logger); err != nil {
		return nil, err
	}
	if s.Babies, err = NewEntryService[family.Baby]("baby", repos.Babies, logger, tracked...); err != nil {
		return nil, err
	}
	if s.Settings, err = NewSettingsService(repos.Settings, repos.Babies, repos.Activity, logger); err != nil {
		return nil, err
	}

	if s.Feedings, err = NewEntryService[care.FeedingEntry]("feeding", repos.Feedings, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Sleeps, err = NewSleepService(repos.Sleeps, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Diapers, err = NewEntryService[care.DiaperEntry]("diaper", repos.Diapers, logger, babyScoped...); err != nil {
		return nil, err
	}

	if s.Growth, err = NewEntryService[health.GrowthEntry]("growth", repos.Growth, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Vaccines, err = NewEntryService[health.VaccineEntry]("vaccine", repos.Vaccines, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Appointments, err = NewEntryService[health.Appointment]("appointment", repos.Appointments, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Milestones, err = NewEntryService[health.DevelopmentalMilestone]("milestone", repos.Milestones, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.Providers, err = NewEntryService[health.HealthcareProvider]("provider", repos.Providers, logger, tracked...); err != nil {
		return nil, err
	}
	if s.Medications, err = NewEntryService[health.Medication]("medication", repos.Medications, logger, babyScoped...); err != nil {
		return nil, err
	}
	if s.MedicationEntries, err = NewMedicationEntryService(repos.MedicationEntries, repos.Medications, logger, babyScoped...); err != nil {
		return nil, err
	}

	if s.Goals, err = NewEntryService[parent.Goal]("parent goal", repos.Goals, logger, tracked...); err != nil {
		return nil, err
	}
	if s.Profiles, err = NewProfileService(repos.Profiles, repos.Activity, logger); err != nil {
		return nil, err
	}

	if s.Activity, err = NewActivityService(repos.Activity, logger); err != nil {
		return nil, err
	}
	s.LiveData, err = NewLiveDataService(LiveDataSources{
		Babies:       repos.Babies,
		Feedings:     repos.Feedings,
		Sleeps:       repos.Sleeps,
		Diapers:      repos.Diapers,
		Appointments: repos.Appointments,
		Medications:  repos.Medications,
		Activity:     repos.Activity,
	}, cache, logger)
	if err != nil {
		return nil, err
	}

	return s, nil
}
