//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitySqliteRepository_RecordAndList(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	babyID := uuid.NewString()
	userID := uuid.NewString()
	start := time.Now().UTC().Add(-time.Hour)

	for i, action := range []string{activity.ActionCreated, activity.ActionUpdated, activity.ActionDeleted} {
		entry := &activity.Log{
			ID:         uuid.NewString(),
			UserID:     &userID,
			BabyID:     &babyID,
			Action:     action,
			EntityType: "feeding",
			EntityID:   uuid.NewString(),
			CreatedAt:  start.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, tc.ActivityRepo.Record(ctx, entry))
	}
	other := uuid.NewString()
	require.NoError(t, tc.ActivityRepo.Record(ctx, &activity.Log{
		ID: uuid.NewString(), BabyID: &other, Action: activity.ActionCreated,
		EntityType: "diaper", EntityID: uuid.NewString(), CreatedAt: start,
	}))

	q := records.NewQuery()
	q.BabyID = babyID
	entries, err := tc.ActivityRepo.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, activity.ActionDeleted, entries[0].Action)

	q = records.NewQuery()
	q.UserID = userID
	q.Limit = 1
	entries, err = tc.ActivityRepo.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
