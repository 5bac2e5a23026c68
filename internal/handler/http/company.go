package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.PostRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.companyService.Create(r.Context(), company.PostToCompany(req), ownerID)
	if err != nil {
		slog.Error("Failed to create company", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company created", "company_id", created.ID, "owner_id", ownerID)
	response.Created(w, "Company created successfully", company.ToResponse(created))
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, company.ToResponses(companies))
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := c.companyService.GetByID(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, company.ToResponse(found))
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
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

	var req company.PatchRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		slog.Error("Update company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := c.companyService.Update(r.Context(), company.PatchToCompany(companyID, req), userID)
	if err != nil {
		slog.Error("Company update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Update company successfully", "company_id", companyID)
	response.SuccessWithMessage(w, "Company updated successfully", company.ToResponse(updated))
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := c.companyService.Delete(r.Context(), companyID, userID); err != nil {
		slog.Error("Company delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company deleted", "company_id", companyID)
	response.NoContent(w)
}
