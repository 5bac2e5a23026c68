package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("created with refresh cookie", func(t *testing.T) {
		env := newTestEnv(t)
		req := auth.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "password123", ConfirmPassword: "password123"}
		tokens := auth.TokenResponse{UserID: 1, AccessToken: "access", AccessTokenExpiresIn: 100, RefreshToken: "refresh", RefreshTokenExpiresIn: 200}
		env.auth.On("Signup", mock.Anything, req, mock.AnythingOfType("auth.SessionTrackingRequest")).Return(tokens, nil)

		rec := env.do(t, http.MethodPost, "/auth/signup", req, "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var got auth.TokenResponse
		decodeData(t, rec, &got)
		assert.Equal(t, tokens, got)

		cookie := findCookie(rec, jwt.RefreshTokenCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("validation error", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/auth/signup", auth.SignupRequest{Email: "not-an-email"}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Details, "email")
		assert.Contains(t, body.Error.Details, "password")
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/auth/signup", "{", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv(t)
		req := auth.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "password123", ConfirmPassword: "password123"}
		env.auth.On("Signup", mock.Anything, req, mock.Anything).Return(auth.TokenResponse{}, user.ErrUserEmailExists)

		rec := env.do(t, http.MethodPost, "/auth/signup", req, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		req := auth.LoginRequest{Email: "ada@example.com", Password: "password123"}
		env.auth.On("Login", mock.Anything, req, mock.Anything).
			Return(auth.TokenResponse{UserID: 1, AccessToken: "a", RefreshToken: "r", RefreshTokenExpiresIn: 200}, nil)

		rec := env.do(t, http.MethodPost, "/auth/login", req, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, findCookie(rec, jwt.RefreshTokenCookieName))
	})

	t.Run("wrong credentials", func(t *testing.T) {
		env := newTestEnv(t)
		req := auth.LoginRequest{Email: "ada@example.com", Password: "wrong-password"}
		env.auth.On("Login", mock.Anything, req, mock.Anything).Return(auth.TokenResponse{}, auth.ErrInvalidCredentials)

		rec := env.do(t, http.MethodPost, "/auth/login", req, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, findCookie(rec, jwt.RefreshTokenCookieName))
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("from cookie", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("RefreshToken", mock.Anything, "cookie-token").
			Return(auth.AccessTokenResponse{AccessToken: "new", AccessTokenExpiresIn: 100}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "cookie-token"})
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got auth.AccessTokenResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "new", got.AccessToken)
	})

	t.Run("from body", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("RefreshToken", mock.Anything, "body-token").Return(auth.AccessTokenResponse{AccessToken: "new"}, nil)

		rec := env.do(t, http.MethodPost, "/auth/refresh", auth.RefreshTokenRequest{RefreshToken: "body-token"}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/auth/refresh", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("RefreshToken", mock.Anything, "revoked").Return(auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked)

		rec := env.do(t, http.MethodPost, "/auth/refresh", auth.RefreshTokenRequest{RefreshToken: "revoked"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("Logout", mock.Anything, "cookie-token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, jwt.RefreshTokenCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthHandler_GoogleNotConfigured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/login/google", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/auth/oauth/callback/google?state=x&code=y", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeGoogle struct {
	info oauth.GoogleInformation
}

func (f fakeGoogle) GenerateState() (string, error) { return "state-123", nil }

func (f fakeGoogle) RedirectURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f fakeGoogle) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if code != "good-code" {
		return nil, errors.New("exchange failed")
	}
	return &oauth2.Token{AccessToken: "google-access"}, nil
}

func (f fakeGoogle) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return f.info, nil
}

func TestAuthHandler_Google(t *testing.T) {
	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour, 24*time.Hour)
	info := oauth.GoogleInformation{GoogleID: "g-1", Email: "ada@example.com", Name: "Ada", VerifiedEmail: true}

	t.Run("login redirects and sets state cookie", func(t *testing.T) {
		h := NewAuthHandler(jwtService, new(mockAuthService), fakeGoogle{info: info})
		rec := httptest.NewRecorder()
		h.LoginWithGoogle(rec, httptest.NewRequest(http.MethodGet, "/auth/login/google", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "state=state-123")
		cookie := findCookie(rec, oauthStateCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, googleCallbackPath, cookie.Path)
	})

	t.Run("callback state mismatch", func(t *testing.T) {
		h := NewAuthHandler(jwtService, new(mockAuthService), fakeGoogle{info: info})
		req := httptest.NewRequest(http.MethodGet, "/auth/oauth/callback/google?state=other&code=good-code", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "state-123"})
		rec := httptest.NewRecorder()
		h.OAuthCallbackGoogle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("callback unverified email", func(t *testing.T) {
		unverified := info
		unverified.VerifiedEmail = false
		h := NewAuthHandler(jwtService, new(mockAuthService), fakeGoogle{info: unverified})
		req := httptest.NewRequest(http.MethodGet, "/auth/oauth/callback/google?state=state-123&code=good-code", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "state-123"})
		rec := httptest.NewRecorder()
		h.OAuthCallbackGoogle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("callback logs in", func(t *testing.T) {
		authService := new(mockAuthService)
		authService.On("LoginWithGoogle", mock.Anything, "ada@example.com", "Ada", "g-1", mock.Anything).
			Return(auth.TokenResponse{UserID: 3, AccessToken: "a", RefreshToken: "r", RefreshTokenExpiresIn: 200}, nil)
		h := NewAuthHandler(jwtService, authService, fakeGoogle{info: info})

		req := httptest.NewRequest(http.MethodGet, "/auth/oauth/callback/google?state=state-123&code=good-code", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "state-123"})
		rec := httptest.NewRecorder()
		h.OAuthCallbackGoogle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got auth.TokenResponse
		decodeData(t, rec, &got)
		assert.Equal(t, int64(3), got.UserID)
		authService.AssertExpectations(t)
	})

	t.Run("callback bad code", func(t *testing.T) {
		h := NewAuthHandler(jwtService, new(mockAuthService), fakeGoogle{info: info})
		req := httptest.NewRequest(http.MethodGet, "/auth/oauth/callback/google?state=state-123&code=bad", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "state-123"})
		rec := httptest.NewRecorder()
		h.OAuthCallbackGoogle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
