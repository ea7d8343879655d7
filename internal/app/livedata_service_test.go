//go:build unit
// +build unit

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
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type liveDataFixture struct {
	babies       *MockRepository[family.Baby]
	feedings     *MockRepository[care.FeedingEntry]
	sleeps       *MockSleepRepository
	diapers      *MockRepository[care.DiaperEntry]
	appointments *MockRepository[health.Appointment]
	medications  *MockRepository[health.Medication]
	activity     *MockActivityRepository
	cache        *MockLiveDataCache
	service      *liveDataService
	now          time.Time
}

func newLiveDataFixture(t *testing.T) *liveDataFixture {
	t.Helper()

	f := &liveDataFixture{
		babies:       new(MockRepository[family.Baby]),
		feedings:     new(MockRepository[care.FeedingEntry]),
		sleeps:       new(MockSleepRepository),
		diapers:      new(MockRepository[care.DiaperEntry]),
		appointments: new(MockRepository[health.Appointment]),
		medications:  new(MockRepository[health.Medication]),
		activity:     new(MockActivityRepository),
		cache:        new(MockLiveDataCache),
		now:          time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC),
	}

	svc, err := newLiveDataService(LiveDataSources{
		Babies:       f.babies,
		Feedings:     f.feedings,
		Sleeps:       f.sleeps,
		Diapers:      f.diapers,
		Appointments: f.appointments,
		Medications:  f.medications,
		Activity:     f.activity,
	}, f.cache, testutil.SetupTestLogger(t), func() time.Time { return f.now })
	require.NoError(t, err)
	f.service = svc
	return f
}

// today matches the queries bounded to the current day
func today(q *records.Query) bool { return !q.From.IsZero() }

func latest(q *records.Query) bool { return q.From.IsZero() }

func TestLiveDataService_Get_BuildsAndCachesSnapshot(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	ml := 100.0

	feedings := []*care.FeedingEntry{
		{Base: records.Base{ID: "f2"}, Type: care.FeedingBottle, StartTime: day.Add(11 * time.Hour), AmountMl: &ml},
		{Base: records.Base{ID: "f1"}, Type: care.FeedingBottle, StartTime: day.Add(7 * time.Hour), AmountMl: &ml},
	}
	diapers := []*care.DiaperEntry{
		{Base: records.Base{ID: "d1"}, Type: care.DiaperMixed, OccurredAt: day.Add(8 * time.Hour)},
	}
	napEnd := day.Add(10 * time.Hour)
	sleeps := []*care.SleepEntry{
		{Base: records.Base{ID: "s1"}, Type: care.SleepNap, StartTime: day.Add(9 * time.Hour), EndTime: &napEnd},
	}
	ongoing := &care.SleepEntry{Base: records.Base{ID: "s2"}, Type: care.SleepNap, StartTime: day.Add(13 * time.Hour)}
	appointments := []*health.Appointment{
		{Title: "checkup", Status: health.AppointmentScheduled, ScheduledAt: f.now.Add(48 * time.Hour)},
		{Title: "cancelled", Status: health.AppointmentCancelled, ScheduledAt: f.now.Add(72 * time.Hour)},
	}
	medications := []*health.Medication{
		{Name: "vitamin d", Active: true, StartDate: day.Add(-72 * time.Hour)},
		{Name: "antibiotic", Active: true, StartDate: day.Add(-240 * time.Hour), EndDate: ptrTime(day.Add(-24 * time.Hour))},
	}

	f.cache.On("Get", mock.Anything, babyID, "UTC").Return(nil, false, nil)
	f.babies.On("GetByID", mock.Anything, babyID).Return(&family.Baby{Base: records.Base{ID: babyID}, Name: "Mia"}, nil)
	f.feedings.On("List", mock.Anything, mock.MatchedBy(today)).Return(feedings, nil)
	f.diapers.On("List", mock.Anything, mock.MatchedBy(today)).Return(diapers, nil)
	f.sleeps.On("List", mock.Anything, mock.MatchedBy(today)).Return(sleeps, nil)
	f.sleeps.On("FindOngoing", mock.Anything, babyID).Return(ongoing, nil)
	f.appointments.On("List", mock.Anything, mock.Anything).Return(appointments, nil)
	f.medications.On("List", mock.Anything, mock.Anything).Return(medications, nil)
	f.activity.On("List", mock.Anything, mock.Anything).Return([]*activity.Log{}, nil)
	f.cache.On("Set", mock.Anything, mock.Anything).Return(nil)

	snapshot, err := f.service.Get(context.Background(), babyID, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Mia", snapshot.Baby.Name)
	assert.Equal(t, "f2", snapshot.LastFeeding.ID)
	assert.Equal(t, "d1", snapshot.LastDiaper.ID)
	assert.Equal(t, "s2", snapshot.ActiveSleep.ID)
	assert.Equal(t, "s1", snapshot.LastSleep.ID)
	assert.Equal(t, 2, snapshot.Today.Feedings)
	assert.Equal(t, 200.0, snapshot.Today.BottleMl)
	assert.Equal(t, 1, snapshot.Today.WetDiapers)
	assert.Equal(t, 1, snapshot.Today.DirtyDiapers)
	assert.Equal(t, 2, snapshot.Today.Naps)
	assert.Equal(t, 120, snapshot.Today.SleepMinutes)
	require.Len(t, snapshot.UpcomingAppointments, 1)
	assert.Equal(t, "checkup", snapshot.UpcomingAppointments[0].Title)
	require.Len(t, snapshot.ActiveMedications, 1)
	assert.Equal(t, "vitamin d", snapshot.ActiveMedications[0].Name)
	assert.Equal(t, f.now, snapshot.GeneratedAt)

	f.cache.AssertCalled(t, "Set", mock.Anything, snapshot)
}

func TestLiveDataService_Get_FallsBackToLatestEntries(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()
	yesterday := f.now.Add(-20 * time.Hour)
	end := yesterday.Add(time.Hour)

	f.babies.On("GetByID", mock.Anything, babyID).Return(&family.Baby{Base: records.Base{ID: babyID}}, nil)
	f.feedings.On("List", mock.Anything, mock.MatchedBy(today)).Return([]*care.FeedingEntry{}, nil)
	f.feedings.On("List", mock.Anything, mock.MatchedBy(latest)).Return([]*care.FeedingEntry{{Base: records.Base{ID: "old"}, StartTime: yesterday}}, nil)
	f.diapers.On("List", mock.Anything, mock.MatchedBy(today)).Return([]*care.DiaperEntry{}, nil)
	f.diapers.On("List", mock.Anything, mock.MatchedBy(latest)).Return([]*care.DiaperEntry{}, nil)
	f.sleeps.On("List", mock.Anything, mock.MatchedBy(today)).Return([]*care.SleepEntry{}, nil)
	f.sleeps.On("List", mock.Anything, mock.MatchedBy(latest)).Return([]*care.SleepEntry{{Base: records.Base{ID: "night"}, StartTime: yesterday, EndTime: &end}}, nil)
	f.sleeps.On("FindOngoing", mock.Anything, babyID).Return(nil, records.NotFound("sleep", babyID))
	f.appointments.On("List", mock.Anything, mock.Anything).Return([]*health.Appointment{}, nil)
	f.medications.On("List", mock.Anything, mock.Anything).Return([]*health.Medication{}, nil)
	f.activity.On("List", mock.Anything, mock.Anything).Return([]*activity.Log{}, nil)

	snapshot, err := newLiveDataServiceWithoutCache(t, f).Get(context.Background(), babyID, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "old", snapshot.LastFeeding.ID)
	assert.Nil(t, snapshot.LastDiaper)
	assert.Nil(t, snapshot.ActiveSleep)
	assert.Equal(t, "night", snapshot.LastSleep.ID)
	assert.Zero(t, snapshot.Today.Feedings)
	assert.NotNil(t, snapshot.UpcomingAppointments)
}

func TestLiveDataService_Get_LastSleepBehindOngoingSleep(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()
	ongoing := &care.SleepEntry{Base: records.Base{ID: "now"}, Type: care.SleepNap, StartTime: f.now.Add(-30 * time.Minute)}
	lastWeekStart := f.now.Add(-6 * 24 * time.Hour)
	lastWeekEnd := lastWeekStart.Add(time.Hour)

	f.babies.On("GetByID", mock.Anything, babyID).Return(&family.Baby{Base: records.Base{ID: babyID}}, nil)
	f.feedings.On("List", mock.Anything, mock.Anything).Return([]*care.FeedingEntry{}, nil)
	f.diapers.On("List", mock.Anything, mock.Anything).Return([]*care.DiaperEntry{}, nil)
	f.sleeps.On("List", mock.Anything, mock.MatchedBy(today)).Return([]*care.SleepEntry{ongoing}, nil)
	f.sleeps.On("List", mock.Anything, mock.MatchedBy(latest)).Return([]*care.SleepEntry{
		ongoing,
		{Base: records.Base{ID: "last-week"}, Type: care.SleepNap, StartTime: lastWeekStart, EndTime: &lastWeekEnd},
	}, nil)
	f.sleeps.On("FindOngoing", mock.Anything, babyID).Return(ongoing, nil)
	f.appointments.On("List", mock.Anything, mock.Anything).Return([]*health.Appointment{}, nil)
	f.medications.On("List", mock.Anything, mock.Anything).Return([]*health.Medication{}, nil)
	f.activity.On("List", mock.Anything, mock.Anything).Return([]*activity.Log{}, nil)

	snapshot, err := newLiveDataServiceWithoutCache(t, f).Get(context.Background(), babyID, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "now", snapshot.ActiveSleep.ID)
	require.NotNil(t, snapshot.LastSleep)
	assert.Equal(t, "last-week", snapshot.LastSleep.ID)
	assert.Equal(t, 30, snapshot.Today.SleepMinutes)
}

func TestLiveDataService_Get_CacheHit(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()
	cached := &livedata.Snapshot{TimeZone: "Europe/Berlin"}

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	f.cache.On("Get", mock.Anything, babyID, "Europe/Berlin").Return(cached, true, nil)

	snapshot, err := f.service.Get(context.Background(), babyID, loc)
	require.NoError(t, err)
	assert.Same(t, cached, snapshot)
	f.babies.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestLiveDataService_Get_UnknownBaby(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()

	f.cache.On("Get", mock.Anything, babyID, "UTC").Return(nil, false, errors.New("cache unavailable"))
	f.babies.On("GetByID", mock.Anything, babyID).Return(nil, records.NotFound("baby", babyID))

	_, err := f.service.Get(context.Background(), babyID, nil)
	assert.True(t, errors.Is(err, records.ErrNotFound))
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestLiveDataService_Get_DayBoundaryFollowsTimeZone(t *testing.T) {
	f := newLiveDataFixture(t)
	babyID := uuid.NewString()
	// 14:00 UTC is already 04:00 of the next day at UTC+14
	loc := time.FixedZone("LINT", 14*60*60)

	var fromSeen time.Time
	f.babies.On("GetByID", mock.Anything, babyID).Return(&family.Baby{}, nil)
	f.feedings.On("List", mock.Anything, mock.MatchedBy(today)).Run(func(args mock.Arguments) {
		fromSeen = args.Get(1).(*records.Query).From
	}).Return([]*care.FeedingEntry{}, nil)
	f.feedings.On("List", mock.Anything, mock.MatchedBy(latest)).Return([]*care.FeedingEntry{}, nil)
	f.diapers.On("List", mock.Anything, mock.Anything).Return([]*care.DiaperEntry{}, nil)
	f.sleeps.On("List", mock.Anything, mock.Anything).Return([]*care.SleepEntry{}, nil)
	f.sleeps.On("FindOngoing", mock.Anything, babyID).Return(nil, records.NotFound("sleep", babyID))
	f.appointments.On("List", mock.Anything, mock.Anything).Return([]*health.Appointment{}, nil)
	f.medications.On("List", mock.Anything, mock.Anything).Return([]*health.Medication{}, nil)
	f.activity.On("List", mock.Anything, mock.Anything).Return([]*activity.Log{}, nil)

	snapshot, err := newLiveDataServiceWithoutCache(t, f).Get(context.Background(), babyID, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC), fromSeen)
	assert.Equal(t, 11, snapshot.Today.Date.Day())
}

func newLiveDataServiceWithoutCache(t *testing.T, f *liveDataFixture) *liveDataService {
	t.Helper()
	f.service.cache = nil
	return f.service
}

func ptrTime(t time.Time) *time.Time { return &t }
