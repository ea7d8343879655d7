//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc, err := NewSettingsService(repo, new(MockRepository[family.Baby]), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	userID := uuid.NewString()
	repo.On("GetByUserID", mock.Anything, userID).Return(nil, records.NotFound("settings", userID))

	settings, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, settings.UserID)
	assert.Equal(t, family.UnitsMetric, settings.Units)
	assert.Equal(t, "UTC", settings.TimeZone)
}

func TestSettingsService_GetRejectsBadUserID(t *testing.T) {
	svc, err := NewSettingsService(new(MockSettingsRepository), new(MockRepository[family.Baby]), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	for _, id := range []string{"", "not-a-uuid"} {
		_, err := svc.Get(context.Background(), id)
		assert.True(t, errors.Is(err, records.ErrInvalid), id)
	}
}

func TestSettingsService_Upsert(t *testing.T) {
	userID := uuid.NewString()
	babyID := uuid.NewString()

	tests := []struct {
		name    string
		baby    *family.Baby
		babyErr error
		wantErr error
	}{
		{name: "own baby", baby: &family.Baby{Base: records.Base{ID: babyID}, UserID: userID}},
		{name: "foreign baby", baby: &family.Baby{Base: records.Base{ID: babyID}, UserID: uuid.NewString()}, wantErr: records.ErrInvalid},
		{name: "unknown baby", babyErr: records.NotFound("baby", babyID), wantErr: records.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSettingsRepository)
			babies := new(MockRepository[family.Baby])
			svc, err := NewSettingsService(repo, babies, nil, testutil.SetupTestLogger(t))
			require.NoError(t, err)

			if tt.baby != nil {
				babies.On("GetByID", mock.Anything, babyID).Return(tt.baby, nil)
			} else {
				babies.On("GetByID", mock.Anything, babyID).Return(nil, tt.babyErr)
			}

			input := family.DefaultSettings(userID)
			input.ActiveBabyID = &babyID
			repo.On("Upsert", mock.Anything, input).Return(nil)
			repo.On("GetByUserID", mock.Anything, userID).Return(input, nil)

			stored, err := svc.Upsert(context.Background(), input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, babyID, *stored.ActiveBabyID)
			assert.False(t, stored.CreatedAt.IsZero())
		})
	}
}

func TestSettingsService_UpsertValidates(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc, err := NewSettingsService(repo, new(MockRepository[family.Baby]), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	settings := family.DefaultSettings(uuid.NewString())
	settings.TimeZone = "Mars/Olympus"

	_, err = svc.Upsert(context.Background(), settings)
	assert.True(t, errors.Is(err, records.ErrInvalid))
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsService_UpsertRecordsActivity(t *testing.T) {
	repo := new(MockSettingsRepository)
	babies := new(MockRepository[family.Baby])
	recorder := new(MockActivityRepository)
	svc, err := NewSettingsService(repo, babies, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	userID := uuid.NewString()
	babyID := uuid.NewString()
	babies.On("GetByID", mock.Anything, babyID).Return(&family.Baby{Base: records.Base{ID: babyID}, UserID: userID}, nil)

	input := family.DefaultSettings(userID)
	input.ActiveBabyID = &babyID
	repo.On("Upsert", mock.Anything, input).Return(nil)
	repo.On("GetByUserID", mock.Anything, userID).Return(input, nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(l *activity.Log) bool {
		return l.Action == activity.ActionUpdated && l.EntityType == "settings" &&
			l.EntityID == input.ID && *l.UserID == userID && *l.BabyID == babyID
	})).Return(nil).Once()

	_, err = svc.Upsert(context.Background(), input)
	require.NoError(t, err)
	recorder.AssertExpectations(t)
}

func TestProfileService_UpsertRecordsActivity(t *testing.T) {
	repo := new(MockProfileRepository)
	recorder := new(MockActivityRepository)
	svc, err := NewProfileService(repo, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	userID := uuid.NewString()
	actor := uuid.NewString()
	profile := &parent.HealthProfile{UserID: userID, Mood: "good"}
	repo.On("Upsert", mock.Anything, profile).Return(nil)
	repo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(l *activity.Log) bool {
		return l.Action == activity.ActionUpdated && l.EntityType == "parent health profile" &&
			*l.UserID == actor && l.BabyID == nil
	})).Return(errors.New("activity table locked")).Once()

	// a failed audit write does not fail the upsert
	stored, err := svc.Upsert(records.WithActor(context.Background(), actor), profile)
	require.NoError(t, err)
	assert.Equal(t, "good", stored.Mood)
	recorder.AssertExpectations(t)
}

func TestProfileService_GetMissingIsNotFound(t *testing.T) {
	repo := new(MockProfileRepository)
	svc, err := NewProfileService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	userID := uuid.NewString()
	repo.On("GetByUserID", mock.Anything, userID).Return(nil, records.NotFound("parent health profile", userID))

	_, err = svc.Get(context.Background(), userID)
	assert.True(t, errors.Is(err, records.ErrNotFound))
}

func TestProfileService_Upsert(t *testing.T) {
	repo := new(MockProfileRepository)
	svc, err := NewProfileService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	pain := 3
	profile := &parent.HealthProfile{UserID: uuid.NewString(), DeliveryType: parent.DeliveryCesarean, PainLevel: &pain, Mood: "okay"}
	repo.On("Upsert", mock.Anything, profile).Return(nil)
	repo.On("GetByUserID", mock.Anything, profile.UserID).Return(profile, nil)

	stored, err := svc.Upsert(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, parent.DeliveryCesarean, stored.DeliveryType)

	tooMuch := 11
	_, err = svc.Upsert(context.Background(), &parent.HealthProfile{UserID: profile.UserID, PainLevel: &tooMuch})
	assert.True(t, errors.Is(err, records.ErrInvalid))
	repo.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestActivityService_RequiresScope(t *testing.T) {
	repo := new(MockActivityRepository)
	svc, err := NewActivityService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.List(context.Background(), &records.Query{Limit: 10})
	assert.True(t, errors.Is(err, records.ErrInvalid))

	query := &records.Query{BabyID: uuid.NewString(), Limit: 10, SortOrder: records.SortDesc}
	repo.On("List", mock.Anything, query).Return(nil, nil)
	_, err = svc.List(context.Background(), query)
	require.NoError(t, err)
}
