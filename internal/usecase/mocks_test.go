package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"recruitment-portal-backend/internal/domain"
)

// Mock Repositories

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, reg *domain.Registration, passwordHash string, roleID int) (*domain.Account, error) {
	args := m.Called(ctx, reg, passwordHash, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) ListByRole(ctx context.Context, roleID int) ([]domain.Account, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

type MockAvailabilityRepo struct {
	mock.Mock
}

func (m *MockAvailabilityRepo) CreateAll(ctx context.Context, windows []domain.Availability) error {
	return m.Called(ctx, windows).Error(0)
}

func (m *MockAvailabilityRepo) ListByPersonID(ctx context.Context, personID int) ([]domain.Availability, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Availability), args.Error(1)
}

type MockCompetenceProfileRepo struct {
	mock.Mock
}

func (m *MockCompetenceProfileRepo) CreateAll(ctx context.Context, profiles []domain.CompetenceProfile) error {
	return m.Called(ctx, profiles).Error(0)
}

func (m *MockCompetenceProfileRepo) ListByPersonID(ctx context.Context, personID int) ([]domain.CompetenceProfile, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompetenceProfile), args.Error(1)
}

// fakeTxManager runs the unit of work inline and records the outcome, so
// tests can assert whether a call committed or rolled back.
type fakeTxManager struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}
