package statusofwork

import (
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/datetime"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

const noteMessage = "note must be one of: late, early-leave, absence, overtime, holiday-work, night-work, paid-leave, unpaid-leave"

type PostRequest struct {
	StartTime  datetime.LocalDateTime `json:"startTime"`
	FinishTime datetime.LocalDateTime `json:"finishTime"`
	Note       Note                   `json:"note"`
}

func (r *PostRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime.IsZero() {
		errs.Add("startTime", "startTime is required")
	}
	if r.FinishTime.IsZero() {
		errs.Add("finishTime", "finishTime is required")
	}
	if r.Note == "" {
		errs.Add("note", "note is required")
	} else if !r.Note.IsValid() {
		errs.Add("note", noteMessage)
	}

	return errs.Err()
}

type PatchRequest struct {
	StartTime  optional.Field[datetime.LocalDateTime] `json:"startTime"`
	FinishTime optional.Field[datetime.LocalDateTime] `json:"finishTime"`
	Note       optional.Field[Note]                   `json:"note"`
}

func (r *PatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime.Null {
		errs.Add("startTime", "startTime must not be null")
	}
	if r.FinishTime.Null {
		errs.Add("finishTime", "finishTime must not be null")
	}
	if r.Note.Set && (r.Note.Null || !r.Note.Value.IsValid()) {
		errs.Add("note", noteMessage)
	}

	return errs.Err()
}

type Response struct {
	ID          int64                  `json:"id"`
	MemberID    int64                  `json:"memberId"`
	MemberName  string                 `json:"memberName"`
	CompanyID   int64                  `json:"companyId"`
	CompanyName string                 `json:"companyName"`
	StartTime   datetime.LocalDateTime `json:"startTime"`
	FinishTime  datetime.LocalDateTime `json:"finishTime"`
	Note        Note                   `json:"note"`
}

type VacationPostRequest struct {
	CompanyID     int64              `json:"companyId" validate:"required,gt=0"`
	VacationStart datetime.LocalDate `json:"vacationStart"`
	VacationEnd   datetime.LocalDate `json:"vacationEnd"`
}

func (r *VacationPostRequest) Validate() error {
	errs := validator.Struct(r)

	if r.VacationStart.IsZero() {
		errs.Add("vacationStart", "vacationStart is required")
	}
	if r.VacationEnd.IsZero() {
		errs.Add("vacationEnd", "vacationEnd is required")
	}

	return errs.Err()
}

type VacationResponse struct {
	RequestID       int64              `json:"requestId"`
	CompanyID       int64              `json:"companyId"`
	CompanyMemberID int64              `json:"companyMemberId"`
	Name            string             `json:"name"`
	VacationStart   datetime.LocalDate `json:"vacationStart"`
	VacationEnd     datetime.LocalDate `json:"vacationEnd"`
	Status          VacationStatus     `json:"status"`
}
