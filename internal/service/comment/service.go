package comment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/validation"
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.Comment, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	repo     repository.CommentRepository
	caseRepo repository.MissingPersonRepository
	notifSvc notification.Service
}

func NewService(repo repository.CommentRepository, caseRepo repository.MissingPersonRepository) Service {
	return &service{repo: repo, caseRepo: caseRepo}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	mp, err := s.caseRepo.GetByID(ctx, input.MissingPersonID)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, domain.ErrCaseNotFound
	}

	c := &domain.Comment{
		ID:              uuid.New(),
		MissingPersonID: input.MissingPersonID,
		UserID:          userID,
		Comment:         input.Comment,
		IsAnonymous:     input.IsAnonymous,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyComment(ctx, mp, userID); err != nil {
			logrus.WithError(err).WithField("comment_id", c.ID).Warn("failed to notify reporter of comment")
		}
	}

	created, err := s.repo.GetByID(ctx, c.ID)
	if err != nil || created == nil {
		return c, nil
	}
	return created, nil
}

func (s *service) ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.repo.ListByCase(ctx, missingPersonID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
