package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/mocks"
	"missing-person-tracker/internal/service/analytics"
)

func TestAnalyticsService_GetDashboardWithoutCache(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	svc := analytics.NewService(repo, nil)
	ctx := context.Background()

	repo.On("Statistics", ctx).Return(&domain.Statistics{TotalCases: 7}, nil).Once()
	repo.On("RecentCases", ctx, 10).Return(nil, nil).Once()
	repo.On("StatusDistribution", ctx).Return([]domain.StatusCount{{Status: string(domain.StatusMissing), Count: 7}}, nil).Once()
	repo.On("MonthlyTrends", ctx, 12).Return(nil, nil).Once()
	repo.On("AgeDistribution", ctx).Return(nil, nil).Once()
	repo.On("GenderDistribution", ctx).Return(nil, nil).Once()
	repo.On("PriorityDistribution", ctx).Return(nil, nil).Once()

	stats, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.Statistics.TotalCases)
	assert.Len(t, stats.StatusDistribution, 1)
	assert.NotNil(t, stats.RecentCases)
	assert.NotNil(t, stats.MonthlyTrends)
	assert.NotNil(t, stats.AgeDistribution)
	repo.AssertExpectations(t)

	// No cache configured: invalidation is a no-op.
	svc.Invalidate(ctx)
}

func TestAnalyticsService_PropagatesErrors(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	svc := analytics.NewService(repo, nil)
	ctx := context.Background()
	boom := errors.New("db down")

	repo.On("Statistics", ctx).Return(nil, boom).Once()

	_, err := svc.GetDashboard(ctx)
	assert.ErrorIs(t, err, boom)
}
