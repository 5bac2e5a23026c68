package company

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
)

// Company is owned by the user who registered it.
type Company struct {
	ID             int64
	Name           string
	Size           string
	BusinessNumber int64
	Address        *string
	Information    *string
	UserID         int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CompanyPatch carries only the fields a client chose to change.
// Address and Information may be cleared with an explicit null.
type CompanyPatch struct {
	ID             int64
	Name           optional.Field[string]
	Size           optional.Field[string]
	BusinessNumber optional.Field[int64]
	Address        optional.Field[string]
	Information    optional.Field[string]
}

// Apply copies present fields onto c; absent fields keep their value.
func (p CompanyPatch) Apply(c *Company) {
	p.Name.Apply(&c.Name)
	p.Size.Apply(&c.Size)
	p.BusinessNumber.Apply(&c.BusinessNumber)
	p.Address.ApplyNullable(&c.Address)
	p.Information.ApplyNullable(&c.Information)
}
