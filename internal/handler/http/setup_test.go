package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/config"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testEnv struct {
	router       http.Handler
	jwtService   jwt.Service
	auth         *mockAuthService
	user         *mockUserService
	company      *mockCompanyService
	member       *mockMemberService
	statusOfWork *mockStatusOfWorkService
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		jwtService:   jwt.NewJWTService(handlerTestSecret, time.Hour, 24*time.Hour),
		auth:         new(mockAuthService),
		user:         new(mockUserService),
		company:      new(mockCompanyService),
		member:       new(mockMemberService),
		statusOfWork: new(mockStatusOfWorkService),
	}

	appConfig := config.AppConfig{
		Name:           "workstatus-test",
		Version:        "test",
		Env:            "test",
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	env.router = NewRouter(appConfig, slog.LevelError, env.jwtService, NewRateLimiters(appConfig), Handlers{
		Auth:         NewAuthHandler(env.jwtService, env.auth, nil),
		User:         NewUserHandler(env.user),
		Company:      NewCompanyHandler(env.company),
		Member:       NewMemberHandler(env.member),
		StatusOfWork: NewStatusOfWorkHandler(env.statusOfWork),
	})

	t.Cleanup(func() {
		env.auth.AssertExpectations(t)
		env.user.AssertExpectations(t)
		env.company.AssertExpectations(t)
		env.member.AssertExpectations(t)
		env.statusOfWork.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) token(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := e.jwtService.GenerateAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	return token
}

// do sends body (a string or a value to be JSON-encoded) with an optional bearer token.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
