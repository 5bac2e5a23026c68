package member

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
)

type Role string

const (
	RoleOwner   Role = "owner"   // Company registrant - full access
	RoleManager Role = "manager" // Manages members, attendance and vacations
	RoleWorker  Role = "worker"  // Regular employee
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CompanyMember is an employee's membership record within a company.
type CompanyMember struct {
	ID        int64
	CompanyID int64
	UserID    int64
	Role      Role
	Grade     string
	Team      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	MemberName  string
	CompanyName string
}

// IsActive reports whether the membership has been approved.
func (m *CompanyMember) IsActive() bool {
	return m.Status == StatusApproved
}

// IsManager checks if member is manager or owner
func (m *CompanyMember) IsManager() bool {
	return m.IsActive() && (m.Role == RoleManager || m.Role == RoleOwner)
}

// MemberPatch carries only the fields a manager chose to change.
type MemberPatch struct {
	ID        int64
	CompanyID int64
	Role      optional.Field[Role]
	Grade     optional.Field[string]
	Team      optional.Field[string]
	Status    optional.Field[Status]
}

func (p MemberPatch) Apply(m *CompanyMember) {
	p.Role.Apply(&m.Role)
	p.Grade.Apply(&m.Grade)
	p.Team.Apply(&m.Team)
	p.Status.Apply(&m.Status)
}
