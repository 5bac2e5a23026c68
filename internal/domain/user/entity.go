package user

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
)

type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// UserPatch carries only the fields a client chose to change.
type UserPatch struct {
	ID   int64
	Name optional.Field[string]
}

// Apply copies present fields onto u.
func (p UserPatch) Apply(u *User) {
	p.Name.Apply(&u.Name)
}
