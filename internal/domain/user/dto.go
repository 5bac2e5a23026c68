package user

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	OAuthProvider *string   `json:"oauthProvider,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PatchRequest updates the caller's own profile.
type PatchRequest struct {
	Name optional.Field[string] `json:"name"`
}

func (r *PatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name.Set {
		if r.Name.Null || validator.IsEmpty(r.Name.Value) {
			errs.Add("name", "name must not be empty")
		} else if len(r.Name.Value) > 100 {
			errs.Add("name", "name must not exceed 100 characters")
		}
	}

	return errs.Err()
}
