package auth

import (
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

type SignupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=8,max=255"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (r *SignupRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.Name) && !hasField(errs, "name") {
		errs.Add("name", "name is required")
	}
	if r.ConfirmPassword != "" && r.ConfirmPassword != r.Password {
		errs.Add("confirmPassword", "password and confirmPassword do not match")
	}

	return errs.Err()
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r).Err()
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SessionTrackingRequest records where a refresh token was issued.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	UserID                int64  `json:"userId"`
	AccessToken           string `json:"accessToken"`
	AccessTokenExpiresIn  int64  `json:"accessTokenExpiresIn"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"accessToken"`
	AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
}

func hasField(errs validator.ValidationErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
