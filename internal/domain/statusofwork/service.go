package statusofwork

import "context"

type StatusOfWorkService interface {
	CreateStatusOfWork(ctx context.Context, record StatusOfWork, companyID, memberID, managerID int64) (StatusOfWork, error)
	UpdateStatusOfWork(ctx context.Context, id int64, patch StatusOfWorkPatch, requesterID int64) (StatusOfWork, error)
	GetStatusOfWork(ctx context.Context, id, requesterID int64) (StatusOfWork, error)
	FindStatusOfWorks(ctx context.Context, year, month int, requesterID int64) ([]StatusOfWork, error)
	FindCompanyStatusOfWorks(ctx context.Context, companyID int64, year, month int, managerID int64) ([]StatusOfWork, error)
	DeleteStatusOfWork(ctx context.Context, id, requesterID int64) error

	RequestVacation(ctx context.Context, record RequestVacation, requesterID int64) (RequestVacation, error)
	ReviewRequestVacation(ctx context.Context, vacationID int64, decision string, managerID int64) (RequestVacation, error)
	GetRequestList(ctx context.Context, companyID, managerID int64) ([]RequestVacation, error)
	GetMyRequestList(ctx context.Context, requesterID int64) ([]RequestVacation, error)
}
