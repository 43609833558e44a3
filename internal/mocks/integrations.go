package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	args := m.Called(ctx, toEmail, fullName)
	return args.Error(0)
}

func (m *EmailService) SendCaseFoundEmail(ctx context.Context, toEmail, recipientName string, mp *domain.MissingPerson) error {
	args := m.Called(ctx, toEmail, recipientName, mp)
	return args.Error(0)
}

type SMSService struct {
	mock.Mock
}

func (m *SMSService) SendCaseFound(ctx context.Context, toPhone string, mp *domain.MissingPerson) error {
	args := m.Called(ctx, toPhone, mp)
	return args.Error(0)
}

type AlertService struct {
	mock.Mock
}

func (m *AlertService) NewCase(ctx context.Context, mp *domain.MissingPerson) error {
	args := m.Called(ctx, mp)
	return args.Error(0)
}

type GeocodeService struct {
	mock.Mock
}

func (m *GeocodeService) Geocode(ctx context.Context, address string) (float64, float64, bool, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(float64), args.Get(1).(float64), args.Bool(2), args.Error(3)
}

type MediaService struct {
	mock.Mock
}

func (m *MediaService) UploadCasePhoto(ctx context.Context, caseID uuid.UUID, size int64, contentType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, caseID, size, contentType, reader)
	return args.String(0), args.Error(1)
}
