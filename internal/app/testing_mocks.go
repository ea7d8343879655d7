//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of records.Repository
type MockRepository[E any] struct {
	mock.Mock
}

func (m *MockRepository[E]) Create(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository[E]) List(ctx context.Context, query *records.Query) ([]*E, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*E), args.Error(1)
}

func (m *MockRepository[E]) GetByID(ctx context.Context, id string) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Update(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository[E]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSleepRepository is a mock implementation of care.SleepRepository
type MockSleepRepository struct {
	MockRepository[care.SleepEntry]
}

func (m *MockSleepRepository) FindOngoing(ctx context.Context, babyID string) (*care.SleepEntry, error) {
	args := m.Called(ctx, babyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*care.SleepEntry), args.Error(1)
}

// MockActivityRepository is a mock implementation of activity.Repository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Record(ctx context.Context, entry *activity.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, query *records.Query) ([]*activity.Log, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Log), args.Error(1)
}

// MockLiveDataCache is a mock implementation of livedata.Cache
type MockLiveDataCache struct {
	mock.Mock
}

func (m *MockLiveDataCache) Get(ctx context.Context, babyID, tz string) (*livedata.Snapshot, bool, error) {
	args := m.Called(ctx, babyID, tz)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*livedata.Snapshot), args.Bool(1), args.Error(2)
}

func (m *MockLiveDataCache) Set(ctx context.Context, snapshot *livedata.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockLiveDataCache) Invalidate(ctx context.Context, babyID string) error {
	args := m.Called(ctx, babyID)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of family.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByUserID(ctx context.Context, userID string) (*family.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*family.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *family.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of parent.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*parent.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parent.HealthProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *parent.HealthProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
