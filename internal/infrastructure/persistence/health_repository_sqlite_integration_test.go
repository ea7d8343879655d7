//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence/models"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationSqliteRepository_DosesRoundTrip(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	med := CreateTestMedication(t, uuid.NewString(), "20:00", "08:00")
	require.NoError(t, tc.MedicationRepo.Create(ctx, med))

	fetched, err := tc.MedicationRepo.GetByID(ctx, med.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Doses, 2)
	assert.Equal(t, "08:00", fetched.Doses[0].TimeOfDay)
	assert.Equal(t, "20:00", fetched.Doses[1].TimeOfDay)

	q := records.NewQuery()
	q.BabyID = med.BabyID
	list, err := tc.MedicationRepo.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Doses, 2)
}

func TestMedicationSqliteRepository_UpdateReplacesDoses(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	med := CreateTestMedication(t, uuid.NewString(), "08:00", "14:00", "20:00")
	require.NoError(t, tc.MedicationRepo.Create(ctx, med))

	med.Doses = []health.MedicationDose{{TimeOfDay: "09:00", Amount: "2"}}
	med.Prepare()
	med.Touch(time.Now().UTC())
	require.NoError(t, tc.MedicationRepo.Update(ctx, med))

	fetched, err := tc.MedicationRepo.GetByID(ctx, med.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Doses, 1)
	assert.Equal(t, "09:00", fetched.Doses[0].TimeOfDay)

	var count int64
	require.NoError(t, tc.DB.Model(&models.MedicationDoseModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMedicationSqliteRepository_DeleteRemovesEntries(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	med := CreateTestMedication(t, uuid.NewString(), "08:00")
	require.NoError(t, tc.MedicationRepo.Create(ctx, med))

	entry := &health.MedicationEntry{BabyID: med.BabyID, MedicationID: med.ID, GivenAt: time.Now().UTC()}
	entry.Stamp(time.Now().UTC())
	require.NoError(t, tc.MedicationEntryRepo.Create(ctx, entry))

	require.NoError(t, tc.MedicationRepo.DeleteByID(ctx, med.ID))

	_, err := tc.MedicationEntryRepo.GetByID(ctx, entry.ID)
	assert.True(t, errors.Is(err, records.ErrNotFound))
}

func TestVaccineSqliteRepository_OrdersByEffectiveDate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	babyID := uuid.NewString()
	now := time.Now().UTC()
	given := now.AddDate(0, -1, 0)
	due := now.AddDate(0, 1, 0)

	administered := &health.VaccineEntry{BabyID: babyID, Name: "HepB", Dose: 1, Status: health.VaccineAdministered, AdministeredAt: &given}
	administered.Stamp(now)
	scheduled := &health.VaccineEntry{BabyID: babyID, Name: "HepB", Dose: 2, Status: health.VaccineScheduled, DueAt: &due}
	scheduled.Stamp(now)
	require.NoError(t, tc.VaccineRepo.Create(ctx, administered))
	require.NoError(t, tc.VaccineRepo.Create(ctx, scheduled))

	q := records.NewQuery()
	q.BabyID = babyID
	list, err := tc.VaccineRepo.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, scheduled.ID, list[0].ID)
	assert.Equal(t, administered.ID, list[1].ID)
}

func TestProfileSqliteRepository_Upsert(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	userID := uuid.NewString()
	pain := 4
	profile := &parent.HealthProfile{UserID: userID, DeliveryType: parent.DeliveryCesarean, PainLevel: &pain}
	profile.Stamp(time.Now().UTC())
	require.NoError(t, tc.ProfileRepo.Upsert(ctx, profile))

	pain = 2
	update := &parent.HealthProfile{UserID: userID, DeliveryType: parent.DeliveryCesarean, PainLevel: &pain, Mood: "good"}
	update.Stamp(time.Now().UTC())
	require.NoError(t, tc.ProfileRepo.Upsert(ctx, update))

	stored, err := tc.ProfileRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, stored.ID)
	assert.Equal(t, 2, *stored.PainLevel)
	assert.Equal(t, "good", stored.Mood)
}
