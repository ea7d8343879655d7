//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParentAndBaby(t *testing.T, ts *TestServices) (*family.User, *family.Baby) {
	t.Helper()
	ctx := context.Background()

	user, err := ts.Users.Create(ctx, &family.User{Email: uuid.NewString()[:8] + "@example.com", Name: "Sam"})
	require.NoError(t, err)

	baby, err := ts.Babies.Create(records.WithActor(ctx, user.ID), &family.Baby{
		UserID:    user.ID,
		Name:      "Noa",
		BirthDate: time.Now().UTC().AddDate(0, -2, 0),
	})
	require.NoError(t, err)
	return user, baby
}

func TestServices_MutationsAreRecordedInActivity(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	user, baby := createParentAndBaby(t, ts)
	ctx := records.WithActor(context.Background(), user.ID)

	ml := 110.0
	feeding, err := ts.Feedings.Create(ctx, &care.FeedingEntry{
		BabyID: baby.ID, Type: care.FeedingBottle, StartTime: time.Now().UTC().Add(-time.Hour), AmountMl: &ml,
	})
	require.NoError(t, err)

	notes := "spit up a little"
	_, err = ts.Feedings.Update(ctx, feeding.ID, care.FeedingPatch{Notes: &notes})
	require.NoError(t, err)
	require.NoError(t, ts.Feedings.DeleteByID(ctx, feeding.ID))

	logs, err := ts.Activity.List(ctx, &records.Query{BabyID: baby.ID, Limit: 10, SortOrder: records.SortDesc})
	require.NoError(t, err)
	require.Len(t, logs, 4)

	assert.Equal(t, activity.ActionDeleted, logs[0].Action)
	assert.Equal(t, "feeding", logs[0].EntityType)
	assert.Equal(t, user.ID, *logs[0].UserID)
	assert.Equal(t, activity.ActionCreated, logs[3].Action)
	assert.Equal(t, "baby", logs[3].EntityType)

	settings := family.DefaultSettings(user.ID)
	settings.ActiveBabyID = &baby.ID
	storedSettings, err := ts.Settings.Upsert(ctx, settings)
	require.NoError(t, err)

	_, err = ts.Profiles.Upsert(ctx, &parent.HealthProfile{UserID: user.ID, Mood: "okay"})
	require.NoError(t, err)

	logs, err = ts.Activity.List(ctx, &records.Query{BabyID: baby.ID, Limit: 10, SortOrder: records.SortDesc})
	require.NoError(t, err)
	require.Len(t, logs, 5)
	assert.Equal(t, "settings", logs[0].EntityType)
	assert.Equal(t, activity.ActionUpdated, logs[0].Action)
	assert.Equal(t, storedSettings.ID, logs[0].EntityID)

	logs, err = ts.Activity.List(ctx, &records.Query{UserID: user.ID, Limit: 10, SortOrder: records.SortDesc})
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "parent health profile", logs[0].EntityType)
	assert.Nil(t, logs[0].BabyID)
}

func TestServices_UnknownBabyIsRejected(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)

	_, err := ts.Diapers.Create(context.Background(), &care.DiaperEntry{
		BabyID: uuid.NewString(), Type: care.DiaperWet, OccurredAt: time.Now().UTC().Add(-time.Minute),
	})
	assert.True(t, errors.Is(err, records.ErrInvalid))
}

func TestServices_SecondOngoingSleepConflicts(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	_, baby := createParentAndBaby(t, ts)
	ctx := context.Background()

	first, err := ts.Sleeps.Create(ctx, &care.SleepEntry{BabyID: baby.ID, Type: care.SleepNap, StartTime: time.Now().UTC().Add(-30 * time.Minute)})
	require.NoError(t, err)

	_, err = ts.Sleeps.Create(ctx, &care.SleepEntry{BabyID: baby.ID, Type: care.SleepNap, StartTime: time.Now().UTC().Add(-5 * time.Minute)})
	assert.True(t, errors.Is(err, records.ErrConflict))

	end := time.Now().UTC()
	_, err = ts.Sleeps.Update(ctx, first.ID, care.SleepPatch{EndTime: &end})
	require.NoError(t, err)

	_, err = ts.Sleeps.Create(ctx, &care.SleepEntry{BabyID: baby.ID, Type: care.SleepNap, StartTime: time.Now().UTC().Add(-time.Second)})
	require.NoError(t, err)
}

func TestServices_LiveDataIsInvalidatedByWrites(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	_, baby := createParentAndBaby(t, ts)
	ctx := context.Background()

	before, err := ts.LiveData.Get(ctx, baby.ID, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, before.LastFeeding)

	_, ok, _ := ts.Cache.Get(ctx, baby.ID, "UTC")
	require.True(t, ok)

	ml := 80.0
	feeding, err := ts.Feedings.Create(ctx, &care.FeedingEntry{
		BabyID: baby.ID, Type: care.FeedingBottle, StartTime: time.Now().UTC().Add(-time.Minute), AmountMl: &ml,
	})
	require.NoError(t, err)

	_, ok, _ = ts.Cache.Get(ctx, baby.ID, "UTC")
	assert.False(t, ok)

	after, err := ts.LiveData.Get(ctx, baby.ID, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, after.LastFeeding)
	assert.Equal(t, feeding.ID, after.LastFeeding.ID)
	assert.Equal(t, "Noa", after.Baby.Name)
}

func TestServices_MedicationEntryMustMatchBaby(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	user, baby := createParentAndBaby(t, ts)
	ctx := context.Background()

	sibling, err := ts.Babies.Create(ctx, &family.Baby{UserID: user.ID, Name: "Ari", BirthDate: time.Now().UTC().AddDate(-1, 0, 0)})
	require.NoError(t, err)

	med, err := ts.Medications.Create(ctx, &health.Medication{
		BabyID: baby.ID, Name: "Iron", Dosage: "0.5", Unit: health.UnitMl,
		StartDate: time.Now().UTC().AddDate(0, 0, -1), Active: true,
		Doses: []health.MedicationDose{{TimeOfDay: "08:00"}},
	})
	require.NoError(t, err)

	_, err = ts.MedicationEntries.Create(ctx, &health.MedicationEntry{BabyID: sibling.ID, MedicationID: med.ID, GivenAt: time.Now().UTC().Add(-time.Minute)})
	assert.True(t, errors.Is(err, records.ErrInvalid))

	_, err = ts.MedicationEntries.Create(ctx, &health.MedicationEntry{BabyID: baby.ID, MedicationID: med.ID, GivenAt: time.Now().UTC().Add(-time.Minute)})
	require.NoError(t, err)
}

func TestServices_SettingsActiveBabyClearedOnDelete(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	user, baby := createParentAndBaby(t, ts)
	ctx := context.Background()

	settings := family.DefaultSettings(user.ID)
	settings.ActiveBabyID = &baby.ID
	_, err := ts.Settings.Upsert(ctx, settings)
	require.NoError(t, err)

	require.NoError(t, ts.Babies.DeleteByID(ctx, baby.ID))

	stored, err := ts.Settings.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ActiveBabyID)
}
