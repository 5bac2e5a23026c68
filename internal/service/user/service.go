package user

import (
	"context"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{db: db, UserRepository: userRepository}
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context, userID int64) (user.User, error) {
	return s.UserRepository.GetByID(ctx, userID)
}

// UpdateMe implements user.UserService.
func (s *UserServiceImpl) UpdateMe(ctx context.Context, patch user.UserPatch) (user.User, error) {
	var updated user.User

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.UserRepository.GetByID(txCtx, patch.ID)
		if err != nil {
			return err
		}

		patch.Apply(&current)

		updated, err = s.UserRepository.Update(txCtx, current)
		return err
	})
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}
