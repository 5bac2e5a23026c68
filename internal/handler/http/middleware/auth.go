package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type userIDKey struct{}

// AuthRequired accepts only verified access tokens and stores the requester id
// for UserIDFromContext. It expects jwtauth.Verifier earlier in the chain.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, err := jwt.UserIDFromClaim(claims["user_id"])
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}

// UserIDFromContext returns the requester id stored by AuthRequired.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
