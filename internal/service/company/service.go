package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
	memberRepo member.MemberRepository
	policy     member.Authorizer
}

func NewCompanyService(db *database.DB, companyRepository company.CompanyRepository, memberRepository member.MemberRepository, policy member.Authorizer) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
		memberRepo:        memberRepository,
		policy:            policy,
	}
}

// Create registers the company and enrolls its owner as an approved member.
// Subtle: this method shadows the method (CompanyRepository).Create of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Create(ctx context.Context, newCompany company.Company, ownerID int64) (company.Company, error) {
	var created company.Company

	err := postgresql.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		var err error
		newCompany.UserID = ownerID
		created, err = c.CompanyRepository.Create(txCtx, newCompany)
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		owner, err := c.memberRepo.Create(txCtx, member.CompanyMember{
			CompanyID: created.ID,
			UserID:    ownerID,
			Role:      member.RoleOwner,
			Status:    member.StatusApproved,
		})
		if err != nil {
			return fmt.Errorf("failed to enroll company owner: %w", err)
		}

		slog.Info("Created company", "company_id", created.ID, "user_id", ownerID, "member_id", owner.ID)
		return nil
	})
	if err != nil {
		return company.Company{}, err
	}

	return created, nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	return c.CompanyRepository.GetByID(ctx, id)
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.Company, error) {
	return c.CompanyRepository.List(ctx)
}

// Update applies the patch on the stored company. Requires PermissionCompanyManage.
func (c *CompanyServiceImpl) Update(ctx context.Context, patch company.CompanyPatch, requesterID int64) (company.Company, error) {
	var updated company.Company

	err := postgresql.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		current, err := c.managedCompany(txCtx, patch.ID, requesterID)
		if err != nil {
			return err
		}

		patch.Apply(&current)

		updated, err = c.CompanyRepository.Update(txCtx, current)
		return err
	})
	if err != nil {
		return company.Company{}, err
	}

	return updated, nil
}

// Delete removes the company with everything that belongs to it.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id int64, requesterID int64) error {
	return postgresql.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		if _, err := c.managedCompany(txCtx, id, requesterID); err != nil {
			return err
		}
		if err := c.CompanyRepository.Delete(txCtx, id); err != nil {
			return err
		}
		slog.Info("Deleted company", "company_id", id, "user_id", requesterID)
		return nil
	})
}

// managedCompany reports ErrCompanyNotFound before any permission check.
func (c *CompanyServiceImpl) managedCompany(ctx context.Context, id, requesterID int64) (company.Company, error) {
	current, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.Company{}, err
	}
	if _, err := c.policy.Authorize(ctx, requesterID, id, member.PermissionCompanyManage); err != nil {
		return company.Company{}, err
	}
	return current, nil
}
