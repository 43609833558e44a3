package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyStatusChange(ctx context.Context, mp *domain.MissingPerson, newStatus domain.CaseStatus, actorID uuid.UUID) error {
	args := m.Called(ctx, mp, newStatus, actorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyComment(ctx context.Context, mp *domain.MissingPerson, authorID uuid.UUID) error {
	args := m.Called(ctx, mp, authorID)
	return args.Error(0)
}

func (m *NotificationService) NotifyAdminsNewCase(ctx context.Context, mp *domain.MissingPerson) error {
	args := m.Called(ctx, mp)
	return args.Error(0)
}
