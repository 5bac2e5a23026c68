package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/statusofwork"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StatusOfWorkHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	FindMine(w http.ResponseWriter, r *http.Request)
	FindByCompany(w http.ResponseWriter, r *http.Request)

	RequestVacation(w http.ResponseWriter, r *http.Request)
	ReviewVacation(w http.ResponseWriter, r *http.Request)
	ListCompanyVacations(w http.ResponseWriter, r *http.Request)
	ListMyVacations(w http.ResponseWriter, r *http.Request)
}

type StatusOfWorkHandlerImpl struct {
	statusOfWorkService statusofwork.StatusOfWorkService
}

func NewStatusOfWorkHandler(statusOfWorkService statusofwork.StatusOfWorkService) StatusOfWorkHandler {
	return &StatusOfWorkHandlerImpl{statusOfWorkService: statusOfWorkService}
}

// Create records an attendance anomaly for a member of the manager's company.
func (h *StatusOfWorkHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	managerID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	companyID, err := pathID(r, "companyId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	memberID, err := pathID(r, "memberId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req statusofwork.PostRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create status of work decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.statusOfWorkService.CreateStatusOfWork(r.Context(), statusofwork.PostToStatusOfWork(req), companyID, memberID, managerID)
	if err != nil {
		slog.Error("Create status of work service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Status of work created", "id", created.ID, "member_id", memberID)
	response.Created(w, "Status of work created successfully", statusofwork.StatusOfWorkToResponse(created))
}

// Update implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	statusID, err := pathID(r, "statusId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req statusofwork.PatchRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update status of work decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.statusOfWorkService.UpdateStatusOfWork(r.Context(), statusID, statusofwork.PatchToStatusOfWork(statusID, req), userID)
	if err != nil {
		slog.Error("Update status of work service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status of work updated successfully", statusofwork.StatusOfWorkToResponse(updated))
}

// Get implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	statusID, err := pathID(r, "statusId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.statusOfWorkService.GetStatusOfWork(r.Context(), statusID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statusofwork.StatusOfWorkToResponse(record))
}

// Delete implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	statusID, err := pathID(r, "statusId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.statusOfWorkService.DeleteStatusOfWork(r.Context(), statusID, userID); err != nil {
		slog.Error("Delete status of work service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// FindMine lists the requester's own records for ?year&month.
func (h *StatusOfWorkHandlerImpl) FindMine(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, month, err := yearMonth(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.statusOfWorkService.FindStatusOfWorks(r.Context(), year, month, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statusofwork.StatusOfWorksToResponses(records))
}

// FindByCompany lists every member's records of a company for ?year&month.
func (h *StatusOfWorkHandlerImpl) FindByCompany(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	companyID, err := pathID(r, "companyId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, month, err := yearMonth(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.statusOfWorkService.FindCompanyStatusOfWorks(r.Context(), companyID, year, month, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statusofwork.StatusOfWorksToResponses(records))
}

// RequestVacation implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) RequestVacation(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req statusofwork.VacationPostRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Request vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.statusOfWorkService.RequestVacation(r.Context(), statusofwork.PostToRequestVacation(req), userID)
	if err != nil {
		slog.Error("Request vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vacation requested", "request_id", created.ID, "company_id", created.CompanyID)
	response.Created(w, "Vacation requested successfully", statusofwork.RequestToResponse(created))
}

// ReviewVacation applies the {status} path decision to a pending request.
func (h *StatusOfWorkHandlerImpl) ReviewVacation(w http.ResponseWriter, r *http.Request) {
	managerID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	vacationID, err := pathID(r, "vacationId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reviewed, err := h.statusOfWorkService.ReviewRequestVacation(r.Context(), vacationID, chi.URLParam(r, "status"), managerID)
	if err != nil {
		slog.Error("Review vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vacation reviewed", "request_id", vacationID, "status", reviewed.Status)
	response.SuccessWithMessage(w, "Vacation reviewed successfully", statusofwork.RequestToResponse(reviewed))
}

// ListCompanyVacations implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) ListCompanyVacations(w http.ResponseWriter, r *http.Request) {
	managerID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	companyID, err := pathID(r, "companyId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.statusOfWorkService.GetRequestList(r.Context(), companyID, managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statusofwork.RequestResponses(requests))
}

// ListMyVacations implements StatusOfWorkHandler.
func (h *StatusOfWorkHandlerImpl) ListMyVacations(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.statusOfWorkService.GetMyRequestList(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statusofwork.RequestResponses(requests))
}

func yearMonth(r *http.Request) (int, int, error) {
	year, err := queryInt(r, "year")
	if err != nil {
		return 0, 0, err
	}
	month, err := queryInt(r, "month")
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
