package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, c Company, ownerID int64) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	Update(ctx context.Context, patch CompanyPatch, requesterID int64) (Company, error)
	Delete(ctx context.Context, id int64, requesterID int64) error
}
