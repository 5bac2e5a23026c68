package member

import "context"

type MemberRepository interface {
	GetByID(ctx context.Context, id int64) (CompanyMember, error)
	GetByCompanyAndUser(ctx context.Context, companyID, userID int64) (CompanyMember, error)
	ListByCompany(ctx context.Context, companyID int64) ([]CompanyMember, error)
	ListByUser(ctx context.Context, userID int64) ([]CompanyMember, error)
	Create(ctx context.Context, m CompanyMember) (CompanyMember, error)
	Update(ctx context.Context, m CompanyMember) (CompanyMember, error)
	Delete(ctx context.Context, id int64) error
}
