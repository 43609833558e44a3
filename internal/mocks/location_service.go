package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type LocationService struct {
	mock.Mock
}

func (m *LocationService) Update(ctx context.Context, userID uuid.UUID, fix domain.LocationFixInput) error {
	args := m.Called(ctx, userID, fix)
	return args.Error(0)
}

func (m *LocationService) History(ctx context.Context, actor domain.Actor, target *uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	args := m.Called(ctx, actor, target, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationHistoryEntry), args.Error(1)
}

func (m *LocationService) ActiveUsers(ctx context.Context, actor domain.Actor) ([]domain.ActiveUserLocation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveUserLocation), args.Error(1)
}
