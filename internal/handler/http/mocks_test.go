package http

import (
	"context"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

var (
	_ auth.AuthService                 = (*mockAuthService)(nil)
	_ user.UserService                 = (*mockUserService)(nil)
	_ company.CompanyService           = (*mockCompanyService)(nil)
	_ member.MemberService             = (*mockMemberService)(nil)
	_ statusofwork.StatusOfWorkService = (*mockStatusOfWorkService)(nil)
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Signup(ctx context.Context, req auth.SignupRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *mockAuthService) LoginWithGoogle(ctx context.Context, email, name, googleID string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, email, name, googleID, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(auth.AccessTokenResponse), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetMe(ctx context.Context, userID int64) (user.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) UpdateMe(ctx context.Context, patch user.UserPatch) (user.User, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(user.User), args.Error(1)
}

type mockCompanyService struct{ mock.Mock }

func (m *mockCompanyService) List(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *mockCompanyService) Create(ctx context.Context, c company.Company, ownerID int64) (company.Company, error) {
	args := m.Called(ctx, c, ownerID)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *mockCompanyService) GetByID(ctx context.Context, id int64) (company.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *mockCompanyService) Update(ctx context.Context, patch company.CompanyPatch, requesterID int64) (company.Company, error) {
	args := m.Called(ctx, patch, requesterID)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *mockCompanyService) Delete(ctx context.Context, id int64, requesterID int64) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

type mockMemberService struct{ mock.Mock }

func (m *mockMemberService) Join(ctx context.Context, cm member.CompanyMember, requesterID int64) (member.CompanyMember, error) {
	args := m.Called(ctx, cm, requesterID)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *mockMemberService) ListByCompany(ctx context.Context, companyID, managerID int64) ([]member.CompanyMember, error) {
	args := m.Called(ctx, companyID, managerID)
	return args.Get(0).([]member.CompanyMember), args.Error(1)
}

func (m *mockMemberService) ListMine(ctx context.Context, requesterID int64) ([]member.CompanyMember, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]member.CompanyMember), args.Error(1)
}

func (m *mockMemberService) Update(ctx context.Context, patch member.MemberPatch, managerID int64) (member.CompanyMember, error) {
	args := m.Called(ctx, patch, managerID)
	return args.Get(0).(member.CompanyMember), args.Error(1)
}

func (m *mockMemberService) Delete(ctx context.Context, companyID, memberID, managerID int64) error {
	return m.Called(ctx, companyID, memberID, managerID).Error(0)
}

type mockStatusOfWorkService struct{ mock.Mock }

func (m *mockStatusOfWorkService) CreateStatusOfWork(ctx context.Context, record statusofwork.StatusOfWork, companyID, memberID, managerID int64) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, record, companyID, memberID, managerID)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *mockStatusOfWorkService) UpdateStatusOfWork(ctx context.Context, id int64, patch statusofwork.StatusOfWorkPatch, requesterID int64) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, id, patch, requesterID)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *mockStatusOfWorkService) GetStatusOfWork(ctx context.Context, id, requesterID int64) (statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Get(0).(statusofwork.StatusOfWork), args.Error(1)
}

func (m *mockStatusOfWorkService) FindStatusOfWorks(ctx context.Context, year, month int, requesterID int64) ([]statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, year, month, requesterID)
	return args.Get(0).([]statusofwork.StatusOfWork), args.Error(1)
}

func (m *mockStatusOfWorkService) FindCompanyStatusOfWorks(ctx context.Context, companyID int64, year, month int, managerID int64) ([]statusofwork.StatusOfWork, error) {
	args := m.Called(ctx, companyID, year, month, managerID)
	return args.Get(0).([]statusofwork.StatusOfWork), args.Error(1)
}

func (m *mockStatusOfWorkService) DeleteStatusOfWork(ctx context.Context, id, requesterID int64) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

func (m *mockStatusOfWorkService) RequestVacation(ctx context.Context, record statusofwork.RequestVacation, requesterID int64) (statusofwork.RequestVacation, error) {
	args := m.Called(ctx, record, requesterID)
	return args.Get(0).(statusofwork.RequestVacation), args.Error(1)
}

func (m *mockStatusOfWorkService) ReviewRequestVacation(ctx context.Context, vacationID int64, decision string, managerID int64) (statusofwork.RequestVacation, error) {
	args := m.Called(ctx, vacationID, decision, managerID)
	return args.Get(0).(statusofwork.RequestVacation), args.Error(1)
}

func (m *mockStatusOfWorkService) GetRequestList(ctx context.Context, companyID, managerID int64) ([]statusofwork.RequestVacation, error) {
	args := m.Called(ctx, companyID, managerID)
	return args.Get(0).([]statusofwork.RequestVacation), args.Error(1)
}

func (m *mockStatusOfWorkService) GetMyRequestList(ctx context.Context, requesterID int64) ([]statusofwork.RequestVacation, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]statusofwork.RequestVacation), args.Error(1)
}
