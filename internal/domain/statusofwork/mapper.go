package statusofwork

import (
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/datetime"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/optional"
)

// PostToStatusOfWork builds a new record; member and company links are set by the service.
func PostToStatusOfWork(req PostRequest) StatusOfWork {
	return StatusOfWork{
		StartTime:  req.StartTime.Time(),
		FinishTime: req.FinishTime.Time(),
		Note:       req.Note,
	}
}

func PatchToStatusOfWork(id int64, req PatchRequest) StatusOfWorkPatch {
	return StatusOfWorkPatch{
		ID:         id,
		StartTime:  localTimeField(req.StartTime),
		FinishTime: localTimeField(req.FinishTime),
		Note:       req.Note,
	}
}

func StatusOfWorkToResponse(s StatusOfWork) Response {
	return Response{
		ID:          s.ID,
		MemberID:    s.MemberID,
		MemberName:  s.MemberName,
		CompanyID:   s.CompanyID,
		CompanyName: s.CompanyName,
		StartTime:   datetime.LocalDateTime(s.StartTime),
		FinishTime:  datetime.LocalDateTime(s.FinishTime),
		Note:        s.Note,
	}
}

func StatusOfWorksToResponses(records []StatusOfWork) []Response {
	responses := make([]Response, 0, len(records))
	for _, s := range records {
		responses = append(responses, StatusOfWorkToResponse(s))
	}
	return responses
}

func PostToRequestVacation(req VacationPostRequest) RequestVacation {
	return RequestVacation{
		CompanyID:     req.CompanyID,
		VacationStart: req.VacationStart.Time(),
		VacationEnd:   req.VacationEnd.Time(),
	}
}

func RequestToResponse(v RequestVacation) VacationResponse {
	return VacationResponse{
		RequestID:       v.ID,
		CompanyID:       v.CompanyID,
		CompanyMemberID: v.MemberID,
		Name:            v.MemberName,
		VacationStart:   datetime.LocalDate(v.VacationStart),
		VacationEnd:     datetime.LocalDate(v.VacationEnd),
		Status:          v.Status,
	}
}

func RequestResponses(requests []RequestVacation) []VacationResponse {
	responses := make([]VacationResponse, 0, len(requests))
	for _, v := range requests {
		responses = append(responses, RequestToResponse(v))
	}
	return responses
}

func localTimeField(f optional.Field[datetime.LocalDateTime]) optional.Field[time.Time] {
	return optional.Field[time.Time]{Set: f.Set, Null: f.Null, Value: f.Value.Time()}
}
