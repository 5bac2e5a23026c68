package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
)

type MemberServiceImpl struct {
	db *database.DB
	member.MemberRepository
	companyRepo company.CompanyRepository
	policy      member.Authorizer
}

func NewMemberService(db *database.DB, memberRepository member.MemberRepository, companyRepository company.CompanyRepository, policy member.Authorizer) member.MemberService {
	return &MemberServiceImpl{
		db:               db,
		MemberRepository: memberRepository,
		companyRepo:      companyRepository,
		policy:           policy,
	}
}

// Join files a pending worker membership for the requester.
func (s *MemberServiceImpl) Join(ctx context.Context, m member.CompanyMember, requesterID int64) (member.CompanyMember, error) {
	if _, err := s.companyRepo.GetByID(ctx, m.CompanyID); err != nil {
		return member.CompanyMember{}, err
	}

	m.UserID = requesterID
	m.Role = member.RoleWorker
	m.Status = member.StatusPending

	created, err := s.MemberRepository.Create(ctx, m)
	if err != nil {
		return member.CompanyMember{}, err
	}

	slog.Info("Membership requested", "company_id", created.CompanyID, "user_id", requesterID, "member_id", created.ID)
	return created, nil
}

// ListByCompany implements member.MemberService.
// Subtle: this method shadows the method (MemberRepository).ListByCompany of MemberServiceImpl.MemberRepository.
func (s *MemberServiceImpl) ListByCompany(ctx context.Context, companyID, managerID int64) ([]member.CompanyMember, error) {
	if _, err := s.policy.Authorize(ctx, managerID, companyID, member.PermissionMemberViewAll); err != nil {
		return nil, err
	}
	return s.MemberRepository.ListByCompany(ctx, companyID)
}

// ListMine implements member.MemberService.
func (s *MemberServiceImpl) ListMine(ctx context.Context, requesterID int64) ([]member.CompanyMember, error) {
	return s.MemberRepository.ListByUser(ctx, requesterID)
}

// Update implements member.MemberService.
// Subtle: this method shadows the method (MemberRepository).Update of MemberServiceImpl.MemberRepository.
func (s *MemberServiceImpl) Update(ctx context.Context, patch member.MemberPatch, managerID int64) (member.CompanyMember, error) {
	var updated member.CompanyMember

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		manager, target, err := s.managedMember(txCtx, patch.CompanyID, patch.ID, managerID)
		if err != nil {
			return err
		}

		if patch.Role.Present() && patch.Role.Value != target.Role &&
			(patch.Role.Value == member.RoleManager || target.Role == member.RoleManager) &&
			!member.HasPermission(manager.Role, member.PermissionManagerAssign) {
			return member.ErrForbidden
		}

		patch.Apply(&target)

		updated, err = s.MemberRepository.Update(txCtx, target)
		if err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		return nil
	})
	if err != nil {
		return member.CompanyMember{}, err
	}

	return updated, nil
}

// Delete implements member.MemberService.
// Subtle: this method shadows the method (MemberRepository).Delete of MemberServiceImpl.MemberRepository.
func (s *MemberServiceImpl) Delete(ctx context.Context, companyID, memberID, managerID int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		manager, target, err := s.managedMember(txCtx, companyID, memberID, managerID)
		if err != nil {
			return err
		}
		if target.Role == member.RoleManager && !member.HasPermission(manager.Role, member.PermissionManagerAssign) {
			return member.ErrForbidden
		}
		return s.MemberRepository.Delete(txCtx, memberID)
	})
}

// managedMember loads a membership of companyID the manager may change.
func (s *MemberServiceImpl) managedMember(ctx context.Context, companyID, memberID, managerID int64) (member.CompanyMember, member.CompanyMember, error) {
	manager, err := s.policy.Authorize(ctx, managerID, companyID, member.PermissionMemberManage)
	if err != nil {
		return member.CompanyMember{}, member.CompanyMember{}, err
	}

	target, err := s.MemberRepository.GetByID(ctx, memberID)
	if err != nil {
		return member.CompanyMember{}, member.CompanyMember{}, err
	}
	if target.CompanyID != companyID {
		return member.CompanyMember{}, member.CompanyMember{}, member.ErrMemberNotFound
	}
	if target.Role == member.RoleOwner {
		return member.CompanyMember{}, member.CompanyMember{}, member.ErrOwnerMembershipFixed
	}
	return manager, target, nil
}
