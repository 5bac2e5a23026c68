package http

import (
	"net/http"
	"testing"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetMe(t *testing.T) {
	env := newTestEnv(t)
	env.user.On("GetMe", mock.Anything, int64(5)).Return(user.User{ID: 5, Name: "Ada", Email: "ada@example.com"}, nil)

	rec := env.do(t, http.MethodGet, "/users/me", nil, env.token(t, 5))

	require.Equal(t, http.StatusOK, rec.Code)
	var got user.UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, int64(5), got.UserID)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		env := newTestEnv(t)
		env.user.On("UpdateMe", mock.Anything, user.UserPatch{ID: 5, Name: optional.Of("Ada L")}).
			Return(user.User{ID: 5, Name: "Ada L"}, nil)

		rec := env.do(t, http.MethodPatch, "/users/me", `{"name":"Ada L"}`, env.token(t, 5))
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("blank name", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPatch, "/users/me", `{"name":"  "}`, env.token(t, 5))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPatch, "/users/me", `{"email":"x@example.com"}`, env.token(t, 5))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
