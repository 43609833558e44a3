package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/repository"
)

const (
	cacheKey    = "analytics:dashboard"
	cacheTTL    = 5 * time.Minute
	recentCases = 10
	trendMonths = 12
)

type Service interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
	// Invalidate drops the cached dashboard after any case write.
	Invalidate(ctx context.Context)
}

type service struct {
	repo  repository.AnalyticsRepository
	redis *redis.Client
}

func NewService(repo repository.AnalyticsRepository, redis *redis.Client) Service {
	return &service{repo: repo, redis: redis}
}

func (s *service) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var stats domain.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.redis.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return stats, nil
}

func (s *service) build(ctx context.Context) (*domain.DashboardStats, error) {
	statistics, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentCases(ctx, recentCases)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	trends, err := s.repo.MonthlyTrends(ctx, trendMonths)
	if err != nil {
		return nil, err
	}
	byAge, err := s.repo.AgeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	byGender, err := s.repo.GenderDistribution(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.repo.PriorityDistribution(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		Statistics:           *statistics,
		RecentCases:          nonNil(recent),
		StatusDistribution:   nonNil(byStatus),
		MonthlyTrends:        nonNil(trends),
		AgeDistribution:      nonNil(byAge),
		GenderDistribution:   nonNil(byGender),
		PriorityDistribution: nonNil(byPriority),
	}, nil
}

func (s *service) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKey).Err(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate analytics cache")
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
