//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/infrastructure/cache"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds the wired application services and their backing stores
type TestServices struct {
	*Services

	Cache     *cache.MemoryCache
	DBContext *persistence.TestContext
}

// SetupTestServices wires every application service on a fresh database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	liveDataCache := cache.NewMemoryCache(time.Minute)

	services, err := NewServices(&Repositories{
		Users:             dbContext.UserRepo,
		Babies:            dbContext.BabyRepo,
		Settings:          dbContext.SettingsRepo,
		Feedings:          dbContext.FeedingRepo,
		Sleeps:            dbContext.SleepRepo,
		Diapers:           dbContext.DiaperRepo,
		Growth:            dbContext.GrowthRepo,
		Vaccines:          dbContext.VaccineRepo,
		Appointments:      dbContext.AppointmentRepo,
		Milestones:        dbContext.MilestoneRepo,
		Providers:         dbContext.ProviderRepo,
		Medications:       dbContext.MedicationRepo,
		MedicationEntries: dbContext.MedicationEntryRepo,
		Goals:             dbContext.GoalRepo,
		Profiles:          dbContext.ProfileRepo,
		Activity:          dbContext.ActivityRepo,
	}, liveDataCache, logger)
	require.NoError(t, err, "Failed to wire services")

	return &TestServices{
		Services:  services,
		Cache:     liveDataCache,
		DBContext: dbContext,
	}
}
