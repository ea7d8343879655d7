package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/pandamaske/biibii-sub002/internal/pkg/metrics"
	"github.com/pandamaske/biibii-sub002/internal/pkg/utils"
)

// LiveDataSources are the repositories a snapshot is assembled from.
type LiveDataSources struct {
	Babies       family.BabyRepository
	Feedings     care.FeedingRepository
	Sleeps       care.SleepRepository
	Diapers      care.DiaperRepository
	Appointments health.AppointmentRepository
	Medications  health.MedicationRepository
	Activity     activity.Repository
}

type liveDataService struct {
	src    LiveDataSources
	cache  livedata.Cache
	logger logger.Logger
	now    func() time.Time
}

// NewLiveDataService creates a new instance of the live data Service. cache may be nil.
func NewLiveDataService(src LiveDataSources, cache livedata.Cache, logger logger.Logger) (livedata.Service, error) {
	return newLiveDataService(src, cache, logger, time.Now)
}

func newLiveDataService(src LiveDataSources, cache livedata.Cache, logger logger.Logger, now func() time.Time) (*liveDataService, error) {
	if src.Babies == nil || src.Feedings == nil || src.Sleeps == nil || src.Diapers == nil ||
		src.Appointments == nil || src.Medications == nil || src.Activity == nil {
		return nil, fmt.Errorf("all live data sources are required")
	}
	return &liveDataService{src: src, cache: cache, logger: logger, now: now}, nil
}

// Get returns the cached snapshot for (babyID, loc) or builds a fresh one
func (s *liveDataService) Get(ctx context.Context, babyID string, loc *time.Location) (*livedata.Snapshot, error) {
	if babyID == "" {
		return nil, records.Invalidf("babyId is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	tz := loc.String()

	if s.cache != nil {
		snapshot, ok, err := s.cache.Get(ctx, babyID, tz)
		switch {
		case err != nil:
			s.logger.Warn("live data cache lookup failed for baby ", babyID, ": ", err)
		case ok:
			metrics.LiveDataCacheLookups.WithLabelValues("hit").Inc()
			return snapshot, nil
		default:
			metrics.LiveDataCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	snapshot, err := s.build(ctx, babyID, loc)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			s.logger.Warn("failed to cache live data for baby ", babyID, ": ", err)
		}
	}
	return snapshot, nil
}

func (s *liveDataService) build(ctx context.Context, babyID string, loc *time.Location) (*livedata.Snapshot, error) {
	// taken before any read so the cache can tell the snapshot from later writes
	now := s.now().UTC()

	baby, err := s.src.Babies.GetByID(ctx, babyID)
	if err != nil {
		return nil, err
	}

	localStart, localEnd := utils.DayBounds(now, loc)
	dayStart, dayEnd := localStart.UTC(), localEnd.UTC()

	snapshot := &livedata.Snapshot{
		Baby:        baby,
		GeneratedAt: now,
		TimeZone:    loc.String(),
	}

	todayQuery := func() *records.Query {
		return &records.Query{BabyID: babyID, From: dayStart, To: now, Limit: records.MaxLimit, SortOrder: records.SortDesc}
	}
	latestQuery := func(limit int) *records.Query {
		return &records.Query{BabyID: babyID, Limit: limit, SortOrder: records.SortDesc}
	}

	feedings, err := s.src.Feedings.List(ctx, todayQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to load feedings: %w", err)
	}
	if len(feedings) > 0 {
		snapshot.LastFeeding = feedings[0]
	} else if last, err := s.src.Feedings.List(ctx, latestQuery(1)); err != nil {
		return nil, fmt.Errorf("failed to load last feeding: %w", err)
	} else if len(last) > 0 {
		snapshot.LastFeeding = last[0]
	}

	diapers, err := s.src.Diapers.List(ctx, todayQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to load diapers: %w", err)
	}
	if len(diapers) > 0 {
		snapshot.LastDiaper = diapers[0]
	} else if last, err := s.src.Diapers.List(ctx, latestQuery(1)); err != nil {
		return nil, fmt.Errorf("failed to load last diaper: %w", err)
	} else if len(last) > 0 {
		snapshot.LastDiaper = last[0]
	}

	// sleeps that started the evening before still count towards today
	sleepQuery := todayQuery()
	sleepQuery.From = dayStart.Add(-livedata.SleepLookbackForDays)
	sleeps, err := s.src.Sleeps.List(ctx, sleepQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep: %w", err)
	}

	active, err := s.src.Sleeps.FindOngoing(ctx, babyID)
	switch {
	case err == nil:
		snapshot.ActiveSleep = active
		if !containsSleep(sleeps, active.ID) {
			sleeps = append(sleeps, active)
		}
	case !errors.Is(err, records.ErrNotFound):
		return nil, fmt.Errorf("failed to load ongoing sleep: %w", err)
	}

	snapshot.LastSleep = lastCompletedSleep(sleeps)
	if snapshot.LastSleep == nil {
		// at most one sleep is ongoing, so two rows always hold a completed one if any exists
		older, err := s.src.Sleeps.List(ctx, latestQuery(2))
		if err != nil {
			return nil, fmt.Errorf("failed to load last sleep: %w", err)
		}
		snapshot.LastSleep = lastCompletedSleep(older)
	}

	snapshot.Today = livedata.Summarize(dayStart, dayEnd, now, feedings, diapers, sleeps)
	snapshot.Today.Date = localStart

	appointments, err := s.src.Appointments.List(ctx, &records.Query{
		BabyID:    babyID,
		From:      now,
		To:        now.Add(livedata.UpcomingWindow),
		Limit:     records.DefaultLimit,
		SortOrder: records.SortAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	snapshot.UpcomingAppointments = make([]*health.Appointment, 0, livedata.MaxUpcoming)
	for _, a := range appointments {
		if len(snapshot.UpcomingAppointments) == livedata.MaxUpcoming {
			break
		}
		if a.Upcoming(now) {
			snapshot.UpcomingAppointments = append(snapshot.UpcomingAppointments, a)
		}
	}

	medications, err := s.src.Medications.List(ctx, latestQuery(records.MaxLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to load medications: %w", err)
	}
	snapshot.ActiveMedications = make([]*health.Medication, 0, len(medications))
	for _, m := range medications {
		if m.ActiveOn(now) {
			snapshot.ActiveMedications = append(snapshot.ActiveMedications, m)
		}
	}

	snapshot.RecentActivity, err = s.src.Activity.List(ctx, latestQuery(livedata.MaxRecentActivity))
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	return snapshot, nil
}

// lastCompletedSleep returns the first finished sleep of a newest-first list
func lastCompletedSleep(sleeps []*care.SleepEntry) *care.SleepEntry {
	for _, sl := range sleeps {
		if !sl.Ongoing() {
			return sl
		}
	}
	return nil
}

func containsSleep(sleeps []*care.SleepEntry, id string) bool {
	for _, s := range sleeps {
		if s.ID == id {
			return true
		}
	}
	return false
}
