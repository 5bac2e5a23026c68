package company

import (
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

type PostRequest struct {
	CompanyName    string  `json:"companyName" validate:"required,max=255"`
	CompanySize    string  `json:"companySize" validate:"required,max=50"`
	BusinessNumber int64   `json:"businessNumber" validate:"required,gt=0"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Information    *string `json:"information,omitempty" validate:"omitempty,max=2000"`
}

func (r *PostRequest) Validate() error {
	errs := validator.Struct(r)
	if r.CompanyName != "" && validator.IsEmpty(r.CompanyName) {
		errs.Add("companyName", "companyName must not be blank")
	}
	return errs.Err()
}

type PatchRequest struct {
	CompanyName    optional.Field[string] `json:"companyName"`
	CompanySize    optional.Field[string] `json:"companySize"`
	BusinessNumber optional.Field[int64]  `json:"businessNumber"`
	Address        optional.Field[string] `json:"address"`
	Information    optional.Field[string] `json:"information"`
}

func (r *PatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName.Set {
		if r.CompanyName.Null || validator.IsEmpty(r.CompanyName.Value) {
			errs.Add("companyName", "companyName must not be empty")
		} else if len(r.CompanyName.Value) > 255 {
			errs.Add("companyName", "companyName must not exceed 255 characters")
		}
	}
	if r.CompanySize.Set && (r.CompanySize.Null || validator.IsEmpty(r.CompanySize.Value)) {
		errs.Add("companySize", "companySize must not be empty")
	}
	if r.BusinessNumber.Set && (r.BusinessNumber.Null || r.BusinessNumber.Value <= 0) {
		errs.Add("businessNumber", "businessNumber must be greater than 0")
	}
	if r.Address.Present() && len(r.Address.Value) > 255 {
		errs.Add("address", "address must not exceed 255 characters")
	}
	if r.Information.Present() && len(r.Information.Value) > 2000 {
		errs.Add("information", "information must not exceed 2000 characters")
	}

	return errs.Err()
}

type Response struct {
	CompanyID      int64   `json:"companyId"`
	CompanyName    string  `json:"companyName"`
	CompanySize    string  `json:"companySize"`
	BusinessNumber int64   `json:"businessNumber"`
	Address        *string `json:"address"`
	Information    *string `json:"information"`
	UserID         int64   `json:"userId"`
}
