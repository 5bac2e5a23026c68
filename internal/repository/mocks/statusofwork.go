package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/stretchr/testify/mock"
)

type StatusOfWorkRepository struct {
	mock.Mock
}

var _ statusofwork.StatusOfWorkRepository = (*StatusOfWorkRepository)(nil)

func (m *StatusOfWorkRepository) Create(ctx context.Context, s statusofwork.StatusOfWork) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *StatusOfWorkRepository) GetByID(ctx context.Context, id int64) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *StatusOfWorkRepository) Update(ctx context.Context, s statusofwork.StatusOfWork) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *StatusOfWorkRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StatusOfWorkRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]statusofwork.StatusOfWork), args.Error(1)
}

func (m *StatusOfWorkRepository) ListByCompanyBetween(ctx context.Context, companyID int64, from, to time.Time) ([]statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, companyID, from, to)
	return args.Get(0).([]statusofwork.StatusOfWork), args.Error(1)
}

type RequestVacationRepository struct {
	mock.Mock
}

var _ statusofwork.RequestVacationRepository = (*RequestVacationRepository)(nil)

func (m *RequestVacationRepository) Create(ctx context.Context, v statusofwork.RequestVacation) (statusofwork.RequestVacation, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(statusofwork.RequestVacation), args.Error(1)
}

func (m *RequestVacationRepository) GetByID(ctx context.Context, id int64) (statusofwork.RequestVacation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(statusofwork.RequestVacation), args.Error(1)
}

func (m *RequestVacationRepository) UpdateReview(ctx context.Context, v statusofwork.RequestVacation) (statusofwork.RequestVacation, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(statusofwork.RequestVacation), args.Error(1)
}

func (m *RequestVacationRepository) ListByCompany(ctx context.Context, companyID int64) ([]statusofwork.RequestVacation, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]statusofwork.RequestVacation), args.Error(1)
}

func (m *RequestVacationRepository) ListByUser(ctx context.Context, userID int64) ([]statusofwork.RequestVacation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]statusofwork.RequestVacation), args.Error(1)
}
