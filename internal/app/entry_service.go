package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/pandamaske/biibii-sub002/internal/pkg/metrics"
)

// entity is satisfied by pointers to tracked domain types.
type entity[E any] interface {
	*E
	records.Entity
}

// checkFunc enforces a rule that needs other records, run after validation
// on both create and update.
type checkFunc[E any] func(ctx context.Context, e *E) error

// entryService implements records.Service on top of a repository. Every
// mutation is recorded in the activity log and invalidates cached live data
// of the owning baby.
type entryService[E any, PE entity[E]] struct {
	name     string
	repo     records.Repository[E]
	babies   records.Repository[family.Baby]
	recorder activity.Recorder
	cache    livedata.Cache
	checks   []checkFunc[E]
	logger   logger.Logger
	now      func() time.Time
}

// EntryOption customizes an entry service.
type EntryOption func(*entryOptions)

type entryOptions struct {
	babies   records.Repository[family.Baby]
	recorder activity.Recorder
	cache    livedata.Cache
	now      func() time.Time
}

// WithBabyCheck rejects entries whose baby does not exist.
func WithBabyCheck(babies records.Repository[family.Baby]) EntryOption {
	return func(o *entryOptions) { o.babies = babies }
}

// WithActivity records every mutation through recorder.
func WithActivity(recorder activity.Recorder) EntryOption {
	return func(o *entryOptions) { o.recorder = recorder }
}

// WithLiveDataCache invalidates the owning baby's snapshots on every mutation.
func WithLiveDataCache(cache livedata.Cache) EntryOption {
	return func(o *entryOptions) { o.cache = cache }
}

// WithClock overrides time.Now, used by tests.
func WithClock(now func() time.Time) EntryOption {
	return func(o *entryOptions) { o.now = now }
}

// NewEntryService creates a records.Service for one entity type. name is the
// singular entity name used in logs, metrics and activity entries.
func NewEntryService[E any, PE entity[E]](name string, repo records.Repository[E], logger logger.Logger, opts ...EntryOption) (records.Service[E], error) {
	svc, err := newEntryService[E, PE](name, repo, logger, opts...)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newEntryService[E any, PE entity[E]](name string, repo records.Repository[E], logger logger.Logger, opts ...EntryOption) (*entryService[E, PE], error) {
	if repo == nil {
		return nil, fmt.Errorf("%s repository is required", name)
	}

	o := &entryOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return &entryService[E, PE]{
		name:     name,
		repo:     repo,
		babies:   o.babies,
		recorder: o.recorder,
		cache:    o.cache,
		logger:   logger,
		now:      o.now,
	}, nil
}

// Create assigns a fresh id and timestamps, validates and stores e
func (s *entryService[E, PE]) Create(ctx context.Context, e *E) (*E, error) {
	if e == nil {
		return nil, records.Invalidf("%s is required", s.name)
	}

	PE(e).Record().Stamp(s.now().UTC())
	if err := s.prepareAndCheck(ctx, e); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.name, err)
	}

	s.afterMutation(ctx, e, activity.ActionCreated)
	return e, nil
}

// List returns the records matching query
func (s *entryService[E, PE]) List(ctx context.Context, query *records.Query) ([]*E, error) {
	if query == nil {
		query = records.NewQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", s.name, err)
	}
	return list, nil
}

// GetByID loads one record
func (s *entryService[E, PE]) GetByID(ctx context.Context, id string) (*E, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies patch to the stored record. An empty patch still bumps UpdatedAt.
func (s *entryService[E, PE]) Update(ctx context.Context, id string, patch records.Patch[E]) (*E, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	base := *PE(current).Record()
	if patch != nil {
		patch.Apply(current)
	}
	// identity and creation time are never patchable
	*PE(current).Record() = base
	PE(current).Record().Touch(s.now().UTC())

	if err := s.prepareAndCheck(ctx, current); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.name, err)
	}

	s.afterMutation(ctx, current, activity.ActionUpdated)
	return current, nil
}

// DeleteByID removes one record
func (s *entryService[E, PE]) DeleteByID(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.name, err)
	}

	s.afterMutation(ctx, current, activity.ActionDeleted)
	return nil
}

func (s *entryService[E, PE]) prepareAndCheck(ctx context.Context, e *E) error {
	if p, ok := any(e).(records.Preparer); ok {
		p.Prepare()
	}
	if err := PE(e).Validate(); err != nil {
		return err
	}

	if s.babies != nil {
		if scoped, ok := any(e).(records.BabyScoped); ok {
			if err := s.requireBaby(ctx, scoped.OwnerBabyID()); err != nil {
				return err
			}
		}
	}

	for _, check := range s.checks {
		if err := check(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *entryService[E, PE]) requireBaby(ctx context.Context, babyID string) error {
	if _, err := s.babies.GetByID(ctx, babyID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return records.Invalidf("unknown baby %s", babyID)
		}
		return fmt.Errorf("failed to look up baby: %w", err)
	}
	return nil
}

// afterMutation runs the side effects of a successful write. Their failures
// are logged and never undo the write.
func (s *entryService[E, PE]) afterMutation(ctx context.Context, e *E, action string) {
	id := PE(e).Record().ID
	metrics.RecordsMutated.WithLabelValues(s.name, action).Inc()
	s.logger.Info(action, " ", s.name, " ", id)

	var babyID *string
	if scoped, ok := any(e).(records.BabyScoped); ok {
		owner := scoped.OwnerBabyID()
		babyID = &owner
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, owner); err != nil {
				s.logger.Warn("failed to invalidate live data for baby ", owner, ": ", err)
			}
		}
	}

	var owner *string
	if scoped, ok := any(e).(records.UserScoped); ok {
		userID := scoped.OwnerUserID()
		owner = &userID
	}
	recordActivity(ctx, s.recorder, s.logger, s.now().UTC(), action, s.name, id, owner, babyID)
}
