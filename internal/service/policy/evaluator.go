package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
)

// Evaluator answers every company-scoped authorization question from the
// requester's membership in that company.
type Evaluator struct {
	members member.MemberRepository
}

func NewEvaluator(memberRepository member.MemberRepository) *Evaluator {
	return &Evaluator{members: memberRepository}
}

var _ member.Authorizer = (*Evaluator)(nil)

// Authorize returns the requester's membership when it is approved and its
// role carries the permission. Any other outcome is member.ErrForbidden.
func (e *Evaluator) Authorize(ctx context.Context, requesterID, companyID int64, permission member.Permission) (member.CompanyMember, error) {
	m, err := e.members.GetByCompanyAndUser(ctx, companyID, requesterID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return member.CompanyMember{}, member.ErrForbidden
		}
		return member.CompanyMember{}, fmt.Errorf("failed to load membership: %w", err)
	}

	if !m.IsActive() || !member.HasPermission(m.Role, permission) {
		return member.CompanyMember{}, member.ErrForbidden
	}
	return m, nil
}
