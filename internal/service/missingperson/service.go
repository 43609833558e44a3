package missingperson

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/validation"
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service/alert"
	"missing-person-tracker/internal/service/analytics"
	"missing-person-tracker/internal/service/email"
	"missing-person-tracker/internal/service/geocode"
	"missing-person-tracker/internal/service/media"
	"missing-person-tracker/internal/service/notification"
	"missing-person-tracker/internal/service/sms"
)

// caseNumberAttempts bounds retries when a generated case number collides.
const caseNumberAttempts = 5

type Service interface {
	List(ctx context.Context, filter domain.CaseFilter) (*domain.CaseList, error)
	Create(ctx context.Context, reporterID uuid.UUID, input domain.CreateMissingPersonInput) (*domain.MissingPerson, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, fields map[string]interface{}) (*domain.MissingPerson, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input domain.UpdateStatusInput) (*domain.MissingPerson, error)
	MyReports(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error)
	ListStatusUpdates(ctx context.Context, id uuid.UUID) ([]domain.StatusUpdate, error)
	UploadPhoto(ctx context.Context, actor domain.Actor, id uuid.UUID, size int64, contentType string, reader io.Reader) (*domain.MissingPerson, error)
}

// Deps groups the optional collaborators. Nil members are skipped.
type Deps struct {
	Notifications notification.Service
	Analytics     analytics.Service
	Email         email.Service
	SMS           sms.Service
	Alerts        alert.Service
	Geocoder      geocode.Service
	Media         media.Service
}

type service struct {
	repo       repository.MissingPersonRepository
	statusRepo repository.StatusUpdateRepository
	deps       Deps

	now   func() time.Time
	rndMu sync.Mutex
	rnd   *rand.Rand
	async func(func())
}

func NewService(
	repo repository.MissingPersonRepository,
	statusRepo repository.StatusUpdateRepository,
	deps Deps,
) Service {
	return &service{
		repo:       repo,
		statusRepo: statusRepo,
		deps:       deps,
		now:        time.Now,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		async:      func(fn func()) { go fn() },
	}
}

func (s *service) List(ctx context.Context, filter domain.CaseFilter) (*domain.CaseList, error) {
	filter.Validate()
	cases, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	list := domain.NewCaseList(cases, filter, total)
	return &list, nil
}

func (s *service) Create(ctx context.Context, reporterID uuid.UUID, input domain.CreateMissingPersonInput) (*domain.MissingPerson, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	lastSeen, err := time.Parse("2006-01-02", input.LastSeenDate)
	if err != nil {
		return nil, &domain.FieldError{Field: "last_seen_date", Reason: "expected YYYY-MM-DD"}
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	mp := &domain.MissingPerson{
		ID:                  uuid.New(),
		ReporterID:          reporterID,
		FullName:            strings.TrimSpace(input.FullName),
		Age:                 input.Age,
		Gender:              input.Gender,
		LastSeenLocation:    input.LastSeenLocation,
		LastSeenLatitude:    input.LastSeenLatitude,
		LastSeenLongitude:   input.LastSeenLongitude,
		LastSeenDate:        lastSeen,
		LastSeenTime:        input.LastSeenTime,
		Height:              input.Height,
		Weight:              input.Weight,
		HairColor:           input.HairColor,
		EyeColor:            input.EyeColor,
		SkinTone:            input.SkinTone,
		DistinctiveFeatures: input.DistinctiveFeatures,
		ClothingDescription: input.ClothingDescription,
		MedicalConditions:   input.MedicalConditions,
		PhotoURL:            input.PhotoURL,
		ContactName:         input.ContactName,
		ContactPhone:        input.ContactPhone,
		ContactEmail:        input.ContactEmail,
		AdditionalInfo:      input.AdditionalInfo,
		Status:              domain.StatusMissing,
		Priority:            priority,
	}

	if mp.LastSeenLatitude == nil && mp.LastSeenLongitude == nil && s.deps.Geocoder != nil {
		lat, lng, ok, err := s.deps.Geocoder.Geocode(ctx, mp.LastSeenLocation)
		if err != nil {
			logrus.WithError(err).WithField("location", mp.LastSeenLocation).Warn("geocoding failed")
		} else if ok {
			mp.LastSeenLatitude = &lat
			mp.LastSeenLongitude = &lng
		}
	}

	if err := s.insertWithCaseNumber(ctx, mp); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx)

	if alert.ShouldAlert(mp.Priority) {
		created := *mp
		s.async(func() {
			bg := context.Background()
			if s.deps.Alerts != nil {
				if err := s.deps.Alerts.NewCase(bg, &created); err != nil {
					logrus.WithError(err).WithField("case_number", created.CaseNumber).Warn("failed to post case alert")
				}
			}
			if s.deps.Notifications != nil {
				if err := s.deps.Notifications.NotifyAdminsNewCase(bg, &created); err != nil {
					logrus.WithError(err).WithField("case_number", created.CaseNumber).Warn("failed to notify admins")
				}
			}
		})
	}

	logrus.WithFields(logrus.Fields{
		"case_id":     mp.ID,
		"case_number": mp.CaseNumber,
		"priority":    mp.Priority,
	}).Info("missing person case created")

	return mp, nil
}

func (s *service) insertWithCaseNumber(ctx context.Context, mp *domain.MissingPerson) error {
	for attempt := 0; attempt < caseNumberAttempts; attempt++ {
		mp.CaseNumber = s.nextCaseNumber()
		err := s.repo.Create(ctx, mp)
		if err == nil {
			return nil
		}
		if !repository.IsUniqueViolation(err, repository.CaseNumberKey) {
			return fmt.Errorf("create missing person: %w", err)
		}
		logrus.WithField("case_number", mp.CaseNumber).Debug("case number collision, retrying")
	}
	return domain.ErrCaseNumberExhausted
}

func (s *service) nextCaseNumber() string {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return domain.GenerateCaseNumber(s.now(), s.rnd)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	mp, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, domain.ErrCaseNotFound
	}
	return mp, nil
}

func (s *service) getForWrite(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.MissingPerson, error) {
	mp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, domain.ErrCaseNotFound
	}
	if mp.ReporterID != actor.ID && !actor.IsAdmin {
		return nil, domain.ErrNotCaseOwner
	}
	return mp, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, fields map[string]interface{}) (*domain.MissingPerson, error) {
	if _, err := s.getForWrite(ctx, actor, id); err != nil {
		return nil, err
	}

	updates, err := NormalizeUpdate(fields)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.IsAdmin {
		return domain.ErrAdminOnly
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCaseNotFound
	}

	s.invalidateAnalytics(ctx)
	logrus.WithFields(logrus.Fields{"case_id": id, "admin_id": actor.ID}).Info("missing person case deleted")
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input domain.UpdateStatusInput) (*domain.MissingPerson, error) {
	if input.Status == "" {
		return nil, domain.ErrStatusRequired
	}
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrCaseNotFound
	}
	if !existing.Status.CanTransitionTo(input.Status) {
		return nil, domain.ErrIllegalTransition
	}

	change := repository.StatusChange{Status: input.Status}
	if input.Status == domain.StatusFound {
		now := s.now()
		actorID := actor.ID
		change.FoundDate = &now
		change.FoundBy = &actorID
		if input.FoundLocation != nil && strings.TrimSpace(*input.FoundLocation) != "" {
			change.FoundLocation = input.FoundLocation
		}
	}

	audit := &domain.StatusUpdate{
		ID:              uuid.New(),
		MissingPersonID: id,
		UserID:          actor.ID,
		OldStatus:       existing.Status,
		NewStatus:       input.Status,
		UpdateNote:      input.UpdateNote,
	}

	if err := s.repo.UpdateStatus(ctx, id, change, audit); err != nil {
		return nil, err
	}

	if s.deps.Notifications != nil {
		if err := s.deps.Notifications.NotifyStatusChange(ctx, existing, input.Status, actor.ID); err != nil {
			logrus.WithError(err).WithField("case_id", id).Warn("failed to notify reporter of status change")
		}
	}

	s.invalidateAnalytics(ctx)

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == domain.StatusFound && existing.Status != domain.StatusFound {
		s.announceFound(updated)
	}
	return updated, nil
}

// announceFound emails the reporter and texts the case contact. Both run in
// the background; failures are logged only.
func (s *service) announceFound(mp *domain.MissingPerson) {
	found := *mp
	s.async(func() {
		bg := context.Background()
		if s.deps.Email != nil && found.ReporterEmail != nil {
			name := ""
			if found.ReporterName != nil {
				name = *found.ReporterName
			}
			if err := s.deps.Email.SendCaseFoundEmail(bg, *found.ReporterEmail, name, &found); err != nil {
				logrus.WithError(err).WithField("case_id", found.ID).Warn("failed to send found email")
			}
		}
		if s.deps.SMS != nil && found.ContactPhone != "" {
			if err := s.deps.SMS.SendCaseFound(bg, found.ContactPhone, &found); err != nil {
				logrus.WithError(err).WithField("case_id", found.ID).Warn("failed to send found sms")
			}
		}
	})
}

func (s *service) MyReports(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error) {
	cases, err := s.repo.ListByReporter(ctx, reporterID)
	if err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []domain.MissingPerson{}
	}
	return cases, nil
}

func (s *service) ListStatusUpdates(ctx context.Context, id uuid.UUID) ([]domain.StatusUpdate, error) {
	mp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, domain.ErrCaseNotFound
	}

	updates, err := s.statusRepo.ListByCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		updates = []domain.StatusUpdate{}
	}
	return updates, nil
}

func (s *service) UploadPhoto(ctx context.Context, actor domain.Actor, id uuid.UUID, size int64, contentType string, reader io.Reader) (*domain.MissingPerson, error) {
	if _, err := s.getForWrite(ctx, actor, id); err != nil {
		return nil, err
	}
	if s.deps.Media == nil {
		return nil, media.ErrStorageUnavailable
	}

	url, err := s.deps.Media.UploadCasePhoto(ctx, id, size, contentType, reader)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePhoto(ctx, id, url); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *service) invalidateAnalytics(ctx context.Context) {
	if s.deps.Analytics != nil {
		s.deps.Analytics.Invalidate(ctx)
	}
}
