package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type AnalyticsService struct {
	mock.Mock
}

func (m *AnalyticsService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *AnalyticsService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
