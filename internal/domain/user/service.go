package user

import "context"

type UserService interface {
	GetMe(ctx context.Context, userID int64) (User, error)
	UpdateMe(ctx context.Context, patch UserPatch) (User, error)
}
