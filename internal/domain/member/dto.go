package member

import (
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

type PostRequest struct {
	Grade string `json:"grade" validate:"max=50"`
	Team  string `json:"team" validate:"max=50"`
}

func (r *PostRequest) Validate() error {
	return validator.Struct(r).Err()
}

type PatchRequest struct {
	Role   optional.Field[Role]   `json:"role"`
	Grade  optional.Field[string] `json:"grade"`
	Team   optional.Field[string] `json:"team"`
	Status optional.Field[Status] `json:"status"`
}

func (r *PatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role.Set {
		if r.Role.Null || (r.Role.Value != RoleManager && r.Role.Value != RoleWorker) {
			errs.Add("role", "role must be one of: manager, worker")
		}
	}
	if r.Grade.Set && (r.Grade.Null || len(r.Grade.Value) > 50) {
		errs.Add("grade", "grade must be a string of at most 50 characters")
	}
	if r.Team.Set && (r.Team.Null || len(r.Team.Value) > 50) {
		errs.Add("team", "team must be a string of at most 50 characters")
	}
	if r.Status.Set {
		valid := []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
		if r.Status.Null || !validator.IsInSlice(string(r.Status.Value), valid) {
			errs.Add("status", "status must be one of: pending, approved, rejected")
		}
	}

	return errs.Err()
}

type Response struct {
	CompanyMemberID int64  `json:"companyMemberId"`
	CompanyID       int64  `json:"companyId"`
	CompanyName     string `json:"companyName"`
	UserID          int64  `json:"userId"`
	Name            string `json:"name"`
	Role            Role   `json:"role"`
	Grade           string `json:"grade"`
	Team            string `json:"team"`
	Status          Status `json:"status"`
}
