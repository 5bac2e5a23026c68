package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token not provided")
	ErrOAuthStateMismatch         = errors.New("oauth state mismatch")
	ErrOAuthEmailNotVerified      = errors.New("oauth email not verified")
	ErrOAuthNotConfigured         = errors.New("oauth provider not configured")
)
