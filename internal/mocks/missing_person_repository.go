package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/repository"
)

type MissingPersonRepository struct {
	mock.Mock
}

func (m *MissingPersonRepository) Create(ctx context.Context, mp *domain.MissingPerson) error {
	args := m.Called(ctx, mp)
	return args.Error(0)
}

func (m *MissingPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.MissingPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonRepository) List(ctx context.Context, filter domain.CaseFilter) ([]domain.MissingPerson, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.MissingPerson), args.Get(1).(int64), args.Error(2)
}

func (m *MissingPersonRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]domain.MissingPerson, error) {
	args := m.Called(ctx, reporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissingPerson), args.Error(1)
}

func (m *MissingPersonRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MissingPersonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, change repository.StatusChange, audit *domain.StatusUpdate) error {
	args := m.Called(ctx, id, change, audit)
	return args.Error(0)
}

func (m *MissingPersonRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	args := m.Called(ctx, id, photoURL)
	return args.Error(0)
}

func (m *MissingPersonRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type StatusUpdateRepository struct {
	mock.Mock
}

func (m *StatusUpdateRepository) ListByCase(ctx context.Context, missingPersonID uuid.UUID) ([]domain.StatusUpdate, error) {
	args := m.Called(ctx, missingPersonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusUpdate), args.Error(1)
}
