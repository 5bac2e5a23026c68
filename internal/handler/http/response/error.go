package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch),
		errors.Is(err, auth.ErrOAuthEmailNotVerified):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrBusinessNumberExists):
		Conflict(w, "Business number already registered")

	// Member domain errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Company member not found")
	case errors.Is(err, member.ErrMemberAlreadyExists):
		Conflict(w, err.Error())
	case errors.Is(err, member.ErrForbidden),
		errors.Is(err, member.ErrOwnerMembershipFixed):
		Forbidden(w, err.Error())

	// Status of work domain errors
	case errors.Is(err, statusofwork.ErrStatusOfWorkNotFound):
		NotFound(w, "Status of work not found")
	case errors.Is(err, statusofwork.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, statusofwork.ErrInvalidTimeRange),
		errors.Is(err, statusofwork.ErrInvalidYearMonth),
		errors.Is(err, statusofwork.ErrInvalidVacationRange),
		errors.Is(err, statusofwork.ErrInvalidReviewDecision),
		errors.Is(err, statusofwork.ErrVacationAlreadyReviewed):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
