package statusofwork

import (
	"context"
	"time"
)

type StatusOfWorkRepository interface {
	Create(ctx context.Context, s StatusOfWork) (StatusOfWork, error)
	GetByID(ctx context.Context, id int64) (StatusOfWork, error)
	Update(ctx context.Context, s StatusOfWork) (StatusOfWork, error)
	Delete(ctx context.Context, id int64) error
	// ListByUserBetween returns records of every membership of userID whose
	// start time falls in [from, to), ordered by start time.
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]StatusOfWork, error)
	ListByCompanyBetween(ctx context.Context, companyID int64, from, to time.Time) ([]StatusOfWork, error)
}

type RequestVacationRepository interface {
	Create(ctx context.Context, v RequestVacation) (RequestVacation, error)
	GetByID(ctx context.Context, id int64) (RequestVacation, error)
	UpdateReview(ctx context.Context, v RequestVacation) (RequestVacation, error)
	ListByCompany(ctx context.Context, companyID int64) ([]RequestVacation, error)
	ListByUser(ctx context.Context, userID int64) ([]RequestVacation, error)
}
