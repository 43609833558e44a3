package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *AnalyticsRepository) RecentCases(ctx context.Context, limit int) ([]domain.MissingPerson, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissingPerson), args.Error(1)
}

func (m *AnalyticsRepository) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *AnalyticsRepository) MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *AnalyticsRepository) AgeDistribution(ctx context.Context) ([]domain.AgeGroupCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgeGroupCount), args.Error(1)
}

func (m *AnalyticsRepository) GenderDistribution(ctx context.Context) ([]domain.GenderCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenderCount), args.Error(1)
}

func (m *AnalyticsRepository) PriorityDistribution(ctx context.Context) ([]domain.PriorityCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriorityCount), args.Error(1)
}
