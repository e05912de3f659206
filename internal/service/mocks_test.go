package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"gatepass/internal/auth"
	"gatepass/internal/broadcast"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plateNumber string) ([]model.Vehicle, error) {
	args := m.Called(ctx, plateNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Vehicle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateStatus(ctx context.Context, id uint, status model.VehicleStatus) (*model.Vehicle, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

// MockPassRepository is a mock implementation of PassRepository.
type MockPassRepository struct {
	mock.Mock
}

func (m *MockPassRepository) Create(ctx context.Context, pass *model.TemporaryPass) error {
	args := m.Called(ctx, pass)
	return args.Error(0)
}

func (m *MockPassRepository) ListByPlateAndStatus(ctx context.Context, plateNumber string, status model.PassStatus) ([]model.TemporaryPass, error) {
	args := m.Called(ctx, plateNumber, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TemporaryPass), args.Error(1)
}

func (m *MockPassRepository) ListByUserID(ctx context.Context, userID uint) ([]model.TemporaryPass, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TemporaryPass), args.Error(1)
}

func (m *MockPassRepository) ListAll(ctx context.Context) ([]model.TemporaryPass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TemporaryPass), args.Error(1)
}

// MockGateLogRepository is a mock implementation of GateLogRepository.
type MockGateLogRepository struct {
	mock.Mock
}

func (m *MockGateLogRepository) Create(ctx context.Context, log *model.GateLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockGateLogRepository) FindByID(ctx context.Context, id uint) (*model.GateLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GateLog), args.Error(1)
}

func (m *MockGateLogRepository) ListByMatchedUser(ctx context.Context, userID uint) ([]model.GateLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GateLog), args.Error(1)
}

func (m *MockGateLogRepository) List(ctx context.Context, filter repository.GateLogFilter) ([]model.GateLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GateLog), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, session auth.RefreshSession, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, session, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (*auth.RefreshSession, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.RefreshSession), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []broadcast.Event
}

func (p *recordingPublisher) Publish(evt broadcast.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Events() []broadcast.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broadcast.Event(nil), p.events...)
}
