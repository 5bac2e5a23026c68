package statusofwork

import "errors"

var (
	ErrStatusOfWorkNotFound    = errors.New("status of work not found")
	ErrInvalidTimeRange        = errors.New("startTime must be before finishTime")
	ErrInvalidYearMonth        = errors.New("year must be 1-9999 and month must be 1-12")
	ErrVacationNotFound        = errors.New("vacation request not found")
	ErrInvalidVacationRange    = errors.New("vacationStart must not be after vacationEnd")
	ErrInvalidReviewDecision   = errors.New("decision must be one of: approved, refused")
	ErrVacationAlreadyReviewed = errors.New("vacation request already reviewed")
)
