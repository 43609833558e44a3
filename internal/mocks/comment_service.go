package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/service/notification"
)

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentService) ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, missingPersonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentService) SetNotificationService(notifSvc notification.Service) {
	m.Called(notifSvc)
}
