// Package mocks provides testify mocks of the repository interfaces for
// service and handler tests.
package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

var _ user.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) LinkGoogleAccount(ctx context.Context, id int64, googleID string) error {
	return m.Called(ctx, id, googleID).Error(0)
}

type RefreshTokenRepository struct {
	mock.Mock
}

var _ auth.RefreshTokenRepository = (*RefreshTokenRepository)(nil)

func (m *RefreshTokenRepository) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	return m.Called(ctx, userID, token, expiresAt, session).Error(0)
}

func (m *RefreshTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *RefreshTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *RefreshTokenRepository) PurgeRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
