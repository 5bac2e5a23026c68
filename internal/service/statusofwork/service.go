package statusofwork

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
)

type StatusOfWorkServiceImpl struct {
	db *database.DB
	statusofwork.StatusOfWorkRepository
	vacationRepo statusofwork.RequestVacationRepository
	memberRepo   member.MemberRepository
	policy       member.Authorizer
	now          func() time.Time
}

func NewStatusOfWorkService(
	db *database.DB,
	statusOfWorkRepository statusofwork.StatusOfWorkRepository,
	vacationRepository statusofwork.RequestVacationRepository,
	memberRepository member.MemberRepository,
	policy member.Authorizer,
) statusofwork.StatusOfWorkService {
	return &StatusOfWorkServiceImpl{
		db:                     db,
		StatusOfWorkRepository: statusOfWorkRepository,
		vacationRepo:           vacationRepository,
		memberRepo:             memberRepository,
		policy:                 policy,
		now:                    time.Now,
	}
}

// CreateStatusOfWork records an anomaly for memberID on behalf of a manager of companyID.
func (s *StatusOfWorkServiceImpl) CreateStatusOfWork(ctx context.Context, record statusofwork.StatusOfWork, companyID, memberID, managerID int64) (statusofwork.StatusOfWork, error) {
	if !record.ValidRange() {
		return statusofwork.StatusOfWork{}, statusofwork.ErrInvalidTimeRange
	}

	var created statusofwork.StatusOfWork
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.policy.Authorize(txCtx, managerID, companyID, member.PermissionStatusManage); err != nil {
			return err
		}

		target, err := s.memberRepo.GetByID(txCtx, memberID)
		if err != nil {
			return err
		}
		if target.CompanyID != companyID || !target.IsActive() {
			return member.ErrMemberNotFound
		}

		record.CompanyID = companyID
		record.MemberID = memberID
		created, err = s.StatusOfWorkRepository.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create status of work: %w", err)
		}
		return nil
	})
	if err != nil {
		return statusofwork.StatusOfWork{}, err
	}

	slog.Info("Status of work created", "status_id", created.ID, "company_id", companyID, "member_id", memberID, "manager_id", managerID)
	return created, nil
}

// UpdateStatusOfWork applies the present patch fields to the stored record.
func (s *StatusOfWorkServiceImpl) UpdateStatusOfWork(ctx context.Context, id int64, patch statusofwork.StatusOfWorkPatch, requesterID int64) (statusofwork.StatusOfWork, error) {
	var updated statusofwork.StatusOfWork

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.StatusOfWorkRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if _, err := s.policy.Authorize(txCtx, requesterID, current.CompanyID, member.PermissionStatusManage); err != nil {
			return err
		}

		patch.Apply(&current)
		if !current.ValidRange() {
			return statusofwork.ErrInvalidTimeRange
		}

		updated, err = s.StatusOfWorkRepository.Update(txCtx, current)
		return err
	})
	if err != nil {
		return statusofwork.StatusOfWork{}, err
	}

	return updated, nil
}

// GetStatusOfWork returns the record to its subject or to a manager of its company.
func (s *StatusOfWorkServiceImpl) GetStatusOfWork(ctx context.Context, id, requesterID int64) (statusofwork.StatusOfWork, error) {
	record, err := s.StatusOfWorkRepository.GetByID(ctx, id)
	if err != nil {
		return statusofwork.StatusOfWork{}, err
	}

	subject, err := s.memberRepo.GetByID(ctx, record.MemberID)
	if err != nil && !errors.Is(err, member.ErrMemberNotFound) {
		return statusofwork.StatusOfWork{}, fmt.Errorf("failed to load member: %w", err)
	}
	if err == nil && subject.UserID == requesterID {
		return record, nil
	}

	if _, err := s.policy.Authorize(ctx, requesterID, record.CompanyID, member.PermissionStatusViewAll); err != nil {
		return statusofwork.StatusOfWork{}, err
	}
	return record, nil
}

// FindStatusOfWorks lists the requester's own records that start in year/month.
func (s *StatusOfWorkServiceImpl) FindStatusOfWorks(ctx context.Context, year, month int, requesterID int64) ([]statusofwork.StatusOfWork, error) {
	if !validator.IsValidYearMonth(year, month) {
		return nil, statusofwork.ErrInvalidYearMonth
	}

	from, to := validator.MonthRange(year, month)
	return s.StatusOfWorkRepository.ListByUserBetween(ctx, requesterID, from, to)
}

// FindCompanyStatusOfWorks lists every record of companyID that starts in year/month.
func (s *StatusOfWorkServiceImpl) FindCompanyStatusOfWorks(ctx context.Context, companyID int64, year, month int, managerID int64) ([]statusofwork.StatusOfWork, error) {
	if !validator.IsValidYearMonth(year, month) {
		return nil, statusofwork.ErrInvalidYearMonth
	}
	if _, err := s.policy.Authorize(ctx, managerID, companyID, member.PermissionStatusViewAll); err != nil {
		return nil, err
	}

	from, to := validator.MonthRange(year, month)
	return s.StatusOfWorkRepository.ListByCompanyBetween(ctx, companyID, from, to)
}

// DeleteStatusOfWork implements statusofwork.StatusOfWorkService.
func (s *StatusOfWorkServiceImpl) DeleteStatusOfWork(ctx context.Context, id, requesterID int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.StatusOfWorkRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if _, err := s.policy.Authorize(txCtx, requesterID, current.CompanyID, member.PermissionStatusManage); err != nil {
			return err
		}
		if err := s.StatusOfWorkRepository.Delete(txCtx, id); err != nil {
			return err
		}

		slog.Info("Status of work deleted", "status_id", id, "requester_id", requesterID)
		return nil
	})
}

// RequestVacation files a pending leave request of the requester in record.CompanyID.
func (s *StatusOfWorkServiceImpl) RequestVacation(ctx context.Context, record statusofwork.RequestVacation, requesterID int64) (statusofwork.RequestVacation, error) {
	if record.VacationStart.After(record.VacationEnd) {
		return statusofwork.RequestVacation{}, statusofwork.ErrInvalidVacationRange
	}

	requester, err := s.policy.Authorize(ctx, requesterID, record.CompanyID, member.PermissionVacationRequest)
	if err != nil {
		return statusofwork.RequestVacation{}, err
	}

	record.MemberID = requester.ID
	record.Status = statusofwork.VacationPending
	record.ReviewedBy = nil
	record.ReviewedAt = nil

	created, err := s.vacationRepo.Create(ctx, record)
	if err != nil {
		return statusofwork.RequestVacation{}, fmt.Errorf("failed to create vacation request: %w", err)
	}
	return created, nil
}

// ReviewRequestVacation moves a pending request to approved or refused.
// A decided request cannot be reviewed again.
func (s *StatusOfWorkServiceImpl) ReviewRequestVacation(ctx context.Context, vacationID int64, decision string, managerID int64) (statusofwork.RequestVacation, error) {
	status, err := statusofwork.ParseDecision(decision)
	if err != nil {
		return statusofwork.RequestVacation{}, err
	}

	var reviewed statusofwork.RequestVacation
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.vacationRepo.GetByID(txCtx, vacationID)
		if err != nil {
			return err
		}
		if _, err := s.policy.Authorize(txCtx, managerID, request.CompanyID, member.PermissionVacationReview); err != nil {
			return err
		}
		if request.IsDecided() {
			return statusofwork.ErrVacationAlreadyReviewed
		}

		reviewedAt := s.now().UTC()
		request.Status = status
		request.ReviewedBy = &managerID
		request.ReviewedAt = &reviewedAt

		reviewed, err = s.vacationRepo.UpdateReview(txCtx, request)
		return err
	})
	if err != nil {
		return statusofwork.RequestVacation{}, err
	}

	slog.Info("Vacation request reviewed", "request_id", vacationID, "status", reviewed.Status, "manager_id", managerID)
	return reviewed, nil
}

// GetRequestList implements statusofwork.StatusOfWorkService.
func (s *StatusOfWorkServiceImpl) GetRequestList(ctx context.Context, companyID, managerID int64) ([]statusofwork.RequestVacation, error) {
	if _, err := s.policy.Authorize(ctx, managerID, companyID, member.PermissionVacationViewAll); err != nil {
		return nil, err
	}
	return s.vacationRepo.ListByCompany(ctx, companyID)
}

// GetMyRequestList implements statusofwork.StatusOfWorkService.
func (s *StatusOfWorkServiceImpl) GetMyRequestList(ctx context.Context, requesterID int64) ([]statusofwork.RequestVacation, error) {
	return s.vacationRepo.ListByUser(ctx, requesterID)
}
