package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
)

type MissingPersonService struct {
	mock.Mock
}

func (m *MissingPersonService) List(ctx context.Context, filter domain.CaseFilter) (*domain.CaseList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseList), args.Error(1)
}

func (m *MissingPersonService) Create(ctx context.Context, reporterID uuid.UUID, input domain.CreateMissingPersonInput) (*domain.MissingPerson, error) {
	args := m.Called(ctx, reporterID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonService) Get(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, fields map[string]interface{}) (*domain.MissingPerson, error) {
	args := m.Called(ctx, actor, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MissingPersonService) UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, input domain.UpdateStatusInput) (*domain.MissingPerson, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonService) MyReports(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error) {
	args := m.Called(ctx, reporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonService) ListStatusUpdates(ctx context.Context, id uuid.UUID) ([]domain.StatusUpdate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusUpdate), args.Error(1)
}

func (m *MissingPersonService) UploadPhoto(ctx context.Context, actor domain.Actor, id uuid.UUID, size int64, contentType string, reader io.Reader) (*domain.MissingPerson, error) {
	args := m.Called(ctx, actor, id, size, contentType, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}
