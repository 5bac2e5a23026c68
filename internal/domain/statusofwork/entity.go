package statusofwork

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
)

// Note is the category of an attendance anomaly.
type Note string

const (
	NoteLate        Note = "late"
	NoteEarlyLeave  Note = "early-leave"
	NoteAbsence     Note = "absence"
	NoteOvertime    Note = "overtime"
	NoteHolidayWork Note = "holiday-work"
	NoteNightWork   Note = "night-work"
	NotePaidLeave   Note = "paid-leave"
	NoteUnpaidLeave Note = "unpaid-leave"
)

var Notes = []Note{
	NoteLate,
	NoteEarlyLeave,
	NoteAbsence,
	NoteOvertime,
	NoteHolidayWork,
	NoteNightWork,
	NotePaidLeave,
	NoteUnpaidLeave,
}

func (n Note) IsValid() bool {
	for _, known := range Notes {
		if n == known {
			return true
		}
	}
	return false
}

// StatusOfWork is an attendance-anomaly record for one company member.
type StatusOfWork struct {
	ID         int64
	CompanyID  int64
	MemberID   int64
	StartTime  time.Time
	FinishTime time.Time
	Note       Note
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	MemberName  string
	CompanyName string
}

// ValidRange reports whether the record starts strictly before it finishes.
func (s *StatusOfWork) ValidRange() bool {
	return s.StartTime.Before(s.FinishTime)
}

// StatusOfWorkPatch carries only the fields a client chose to change.
type StatusOfWorkPatch struct {
	ID         int64
	StartTime  optional.Field[time.Time]
	FinishTime optional.Field[time.Time]
	Note       optional.Field[Note]
}

// Apply copies present fields onto s; absent fields keep their value.
func (p StatusOfWorkPatch) Apply(s *StatusOfWork) {
	p.StartTime.Apply(&s.StartTime)
	p.FinishTime.Apply(&s.FinishTime)
	p.Note.Apply(&s.Note)
}

type VacationStatus string

const (
	VacationPending  VacationStatus = "pending"
	VacationApproved VacationStatus = "approved"
	VacationRefused  VacationStatus = "refused"
)

// RequestVacation is a leave request of one company member.
type RequestVacation struct {
	ID            int64
	CompanyID     int64
	MemberID      int64
	VacationStart time.Time
	VacationEnd   time.Time
	Status        VacationStatus
	ReviewedBy    *int64
	ReviewedAt    *time.Time
	CreatedAt     time.Time

	// Join
	MemberName string
}

// IsDecided reports whether the request reached a terminal state.
func (v *RequestVacation) IsDecided() bool {
	return v.Status != VacationPending
}

// ParseDecision maps a review path segment onto a terminal status.
// "refuse" is accepted as an alias of "refused".
func ParseDecision(decision string) (VacationStatus, error) {
	switch decision {
	case string(VacationApproved):
		return VacationApproved, nil
	case string(VacationRefused), "refuse":
		return VacationRefused, nil
	default:
		return "", ErrInvalidReviewDecision
	}
}
