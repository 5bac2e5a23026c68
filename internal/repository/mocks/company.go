package mocks

import (
	"context"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/stretchr/testify/mock"
)

type CompanyRepository struct {
	mock.Mock
}

var _ company.CompanyRepository = (*CompanyRepository)(nil)

func (m *CompanyRepository) GetByID(ctx context.Context, id int64) (company.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *CompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *CompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, c company.Company) (company.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *CompanyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MemberRepository struct {
	mock.Mock
}

var _ member.MemberRepository = (*MemberRepository)(nil)

func (m *MemberRepository) GetByID(ctx context.Context, id int64) (member.CompanyMember, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) GetByCompanyAndUser(ctx context.Context, companyID, userID int64) (member.CompanyMember, error) {
	args := m.Called(ctx, companyID, userID)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) ListByCompany(ctx context.Context, companyID int64) ([]member.CompanyMember, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) ListByUser(ctx context.Context, userID int64) ([]member.CompanyMember, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) Create(ctx context.Context, cm member.CompanyMember) (member.CompanyMember, error) {
	args := m.Called(ctx, cm)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) Update(ctx context.Context, cm member.CompanyMember) (member.CompanyMember, error) {
	args := m.Called(ctx, cm)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *MemberRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
