//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB *gorm.DB

	UserRepo     family.UserRepository
	BabyRepo     family.BabyRepository
	SettingsRepo family.SettingsRepository

	FeedingRepo care.FeedingRepository
	SleepRepo   care.SleepRepository
	DiaperRepo  care.DiaperRepository

	GrowthRepo          health.GrowthRepository
	VaccineRepo         health.VaccineRepository
	AppointmentRepo     health.AppointmentRepository
	MilestoneRepo       health.MilestoneRepository
	ProviderRepo        health.ProviderRepository
	MedicationRepo      health.MedicationRepository
	MedicationEntryRepo health.MedicationEntryRepository

	GoalRepo    parent.GoalRepository
	ProfileRepo parent.ProfileRepository

	ActivityRepo activity.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)
	tc.BabyRepo, err = NewGormBabyRepository(db, logger)
	require.NoError(t, err)
	tc.SettingsRepo, err = NewGormSettingsRepository(db, logger)
	require.NoError(t, err)
	tc.FeedingRepo, err = NewGormFeedingRepository(db, logger)
	require.NoError(t, err)
	tc.SleepRepo, err = NewGormSleepRepository(db, logger)
	require.NoError(t, err)
	tc.DiaperRepo, err = NewGormDiaperRepository(db, logger)
	require.NoError(t, err)
	tc.GrowthRepo, err = NewGormGrowthRepository(db, logger)
	require.NoError(t, err)
	tc.VaccineRepo, err = NewGormVaccineRepository(db, logger)
	require.NoError(t, err)
	tc.AppointmentRepo, err = NewGormAppointmentRepository(db, logger)
	require.NoError(t, err)
	tc.MilestoneRepo, err = NewGormMilestoneRepository(db, logger)
	require.NoError(t, err)
	tc.ProviderRepo, err = NewGormProviderRepository(db, logger)
	require.NoError(t, err)
	tc.MedicationRepo, err = NewGormMedicationRepository(db, logger)
	require.NoError(t, err)
	tc.MedicationEntryRepo, err = NewGormMedicationEntryRepository(db, logger)
	require.NoError(t, err)
	tc.GoalRepo, err = NewGormGoalRepository(db, logger)
	require.NoError(t, err)
	tc.ProfileRepo, err = NewGormProfileRepository(db, logger)
	require.NoError(t, err)
	tc.ActivityRepo, err = NewGormActivityRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestUser returns an unsaved user with a unique email
func CreateTestUser(t *testing.T) *family.User {
	t.Helper()

	u := &family.User{
		Email: "parent-" + uuid.NewString()[:8] + "@example.com",
		Name:  "Test Parent",
	}
	u.Stamp(time.Now().UTC())
	return u
}

// CreateTestBaby returns an unsaved baby born 60 days ago
func CreateTestBaby(t *testing.T, userID string) *family.Baby {
	t.Helper()

	b := &family.Baby{
		UserID:    userID,
		Name:      "Test Baby",
		BirthDate: time.Now().UTC().AddDate(0, 0, -60),
		Gender:    family.GenderFemale,
	}
	b.Stamp(time.Now().UTC())
	return b
}

// CreateTestFeeding returns an unsaved bottle feeding started at start
func CreateTestFeeding(t *testing.T, babyID string, start time.Time, amountMl float64) *care.FeedingEntry {
	t.Helper()

	f := &care.FeedingEntry{
		BabyID:    babyID,
		Type:      care.FeedingBottle,
		StartTime: start,
		AmountMl:  &amountMl,
	}
	f.Stamp(time.Now().UTC())
	return f
}

// CreateTestSleep returns an unsaved sleep; a nil end makes it ongoing
func CreateTestSleep(t *testing.T, babyID string, start time.Time, end *time.Time) *care.SleepEntry {
	t.Helper()

	s := &care.SleepEntry{
		BabyID:    babyID,
		Type:      care.SleepNap,
		StartTime: start,
		EndTime:   end,
	}
	s.Stamp(time.Now().UTC())
	return s
}

// CreateTestMedication returns an unsaved medication with the given dose times
func CreateTestMedication(t *testing.T, babyID string, times ...string) *health.Medication {
	t.Helper()

	m := &health.Medication{
		BabyID:    babyID,
		Name:      "Vitamin D",
		Dosage:    "1",
		Unit:      health.UnitDrops,
		StartDate: time.Now().UTC().AddDate(0, 0, -7),
		Active:    true,
	}
	for _, tod := range times {
		m.Doses = append(m.Doses, health.MedicationDose{TimeOfDay: tod})
	}
	m.Stamp(time.Now().UTC())
	m.Prepare()
	return m
}
