package member

import "context"

type MemberService interface {
	Join(ctx context.Context, m CompanyMember, requesterID int64) (CompanyMember, error)
	ListByCompany(ctx context.Context, companyID, managerID int64) ([]CompanyMember, error)
	ListMine(ctx context.Context, requesterID int64) ([]CompanyMember, error)
	Update(ctx context.Context, patch MemberPatch, managerID int64) (CompanyMember, error)
	Delete(ctx context.Context, companyID, memberID, managerID int64) error
}

// Authorizer evaluates whether a requester may act on a company.
type Authorizer interface {
	Authorize(ctx context.Context, requesterID, companyID int64, permission Permission) (CompanyMember, error)
}
