package notification

import (
	"context"

	"github.com/google/uuid"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/i18n"
	"missing-person-tracker/internal/repository"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyStatusChange(ctx context.Context, mp *domain.MissingPerson, newStatus domain.CaseStatus, actorID uuid.UUID) error
	NotifyComment(ctx context.Context, mp *domain.MissingPerson, authorID uuid.UUID) error
	NotifyAdminsNewCase(ctx context.Context, mp *domain.MissingPerson) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	locale    string
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		locale:    i18n.DefaultLocale,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.notifRepo.ListByUser(ctx, userID, domain.NotificationListLimit)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *service) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := s.notifRepo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	_, err := s.notifRepo.MarkAllAsRead(ctx, userID)
	return err
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// NotifyStatusChange tells the reporter about a transition made by someone
// else. Reporters changing their own case get nothing.
func (s *service) NotifyStatusChange(ctx context.Context, mp *domain.MissingPerson, newStatus domain.CaseStatus, actorID uuid.UUID) error {
	if mp.ReporterID == actorID {
		return nil
	}

	message := i18n.Format(s.locale, "status_update.changed", map[string]string{"status": string(newStatus)})
	if newStatus == domain.StatusFound {
		message = i18n.Format(s.locale, "status_update.found", map[string]string{"name": mp.FullName})
	}

	return s.create(ctx, mp.ReporterID, &mp.ID,
		i18n.Translate(s.locale, "status_update.title"), message, domain.NotifStatusUpdate)
}

func (s *service) NotifyComment(ctx context.Context, mp *domain.MissingPerson, authorID uuid.UUID) error {
	if mp.ReporterID == authorID {
		return nil
	}

	return s.create(ctx, mp.ReporterID, &mp.ID,
		i18n.Translate(s.locale, "comment.title"),
		i18n.Format(s.locale, "comment.message", map[string]string{"name": mp.FullName}),
		domain.NotifComment)
}

// NotifyAdminsNewCase sends a general notification to every admin other than
// the reporter.
func (s *service) NotifyAdminsNewCase(ctx context.Context, mp *domain.MissingPerson) error {
	adminIDs, err := s.userRepo.ListAdminIDs(ctx)
	if err != nil {
		return err
	}

	title := "New " + string(mp.Priority) + " priority case"
	message := i18n.Format(s.locale, "alert.new_case", map[string]string{
		"priority":    string(mp.Priority),
		"case_number": mp.CaseNumber,
		"name":        mp.FullName,
		"location":    mp.LastSeenLocation,
		"date":        mp.LastSeenDate.Format("2006-01-02"),
	})

	for _, adminID := range adminIDs {
		if adminID == mp.ReporterID {
			continue
		}
		if err := s.create(ctx, adminID, &mp.ID, title, message, domain.NotifGeneral); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) create(ctx context.Context, userID uuid.UUID, caseID *uuid.UUID, title, message string, typ domain.NotificationType) error {
	return s.notifRepo.Create(ctx, &domain.Notification{
		ID:              uuid.New(),
		UserID:          userID,
		MissingPersonID: caseID,
		Title:           title,
		Message:         message,
		Type:            typ,
	})
}
