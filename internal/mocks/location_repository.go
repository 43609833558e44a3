package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/repository"
)

type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) Record(ctx context.Context, loc *domain.CurrentLocation) (repository.RecordResult, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(repository.RecordResult), args.Error(1)
}

func (m *LocationRepository) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationHistoryEntry), args.Error(1)
}

func (m *LocationRepository) ActiveUsers(ctx context.Context) ([]domain.ActiveUserLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveUserLocation), args.Error(1)
}
