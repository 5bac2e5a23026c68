package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
)

type MemberHandler interface {
	Join(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MemberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &MemberHandlerImpl{memberService: memberService}
}

// Join asks to enroll the requester in a company.
func (h *MemberHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
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

	var req member.PostRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Join company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.memberService.Join(r.Context(), member.PostToMember(companyID, req), userID)
	if err != nil {
		slog.Error("Join company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Membership requested successfully", member.ToResponse(created))
}

// ListByCompany implements MemberHandler.
func (h *MemberHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
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

	members, err := h.memberService.ListByCompany(r.Context(), companyID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, member.ToResponses(members))
}

// ListMine implements MemberHandler.
func (h *MemberHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	members, err := h.memberService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, member.ToResponses(members))
}

// Update implements MemberHandler.
func (h *MemberHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
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
	memberID, err := pathID(r, "memberId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req member.PatchRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.memberService.Update(r.Context(), member.PatchToMember(companyID, memberID, req), userID)
	if err != nil {
		slog.Error("Update member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member updated successfully", member.ToResponse(updated))
}

// Delete implements MemberHandler.
func (h *MemberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
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
	memberID, err := pathID(r, "memberId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.memberService.Delete(r.Context(), companyID, memberID, userID); err != nil {
		slog.Error("Delete member service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
