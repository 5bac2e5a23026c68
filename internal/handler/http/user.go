package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// GetMe implements UserHandler.
func (h *UserHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userService.GetMe(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.ToResponse(u))
}

// UpdateMe implements UserHandler.
func (h *UserHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.PatchRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userService.UpdateMe(r.Context(), user.PatchToUser(userID, req))
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", user.ToResponse(u))
}
