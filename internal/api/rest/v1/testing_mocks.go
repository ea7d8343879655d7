//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"

	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of records.Service
type MockService[E any] struct {
	mock.Mock
}

func (m *MockService[E]) Create(ctx context.Context, e *E) (*E, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockService[E]) List(ctx context.Context, query *records.Query) ([]*E, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*E), args.Error(1)
}

func (m *MockService[E]) GetByID(ctx context.Context, id string) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockService[E]) Update(ctx context.Context, id string, patch records.Patch[E]) (*E, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockService[E]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsService is a mock implementation of family.SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, userID string) (*family.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*family.UserSettings), args.Error(1)
}

func (m *MockSettingsService) Upsert(ctx context.Context, settings *family.UserSettings) (*family.UserSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*family.UserSettings), args.Error(1)
}

// MockProfileService is a mock implementation of parent.ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*parent.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parent.HealthProfile), args.Error(1)
}

func (m *MockProfileService) Upsert(ctx context.Context, profile *parent.HealthProfile) (*parent.HealthProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parent.HealthProfile), args.Error(1)
}

// MockActivityService is a mock implementation of activity.Service
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) List(ctx context.Context, query *records.Query) ([]*activity.Log, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Log), args.Error(1)
}

// MockLiveDataService is a mock implementation of livedata.Service
type MockLiveDataService struct {
	mock.Mock
}

func (m *MockLiveDataService) Get(ctx context.Context, babyID string, loc *time.Location) (*livedata.Snapshot, error) {
	args := m.Called(ctx, babyID, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*livedata.Snapshot), args.Error(1)
}
