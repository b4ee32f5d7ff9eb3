package handler

import (
	"net/http"

	"github.com/FrancoCalegari/demobodega/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// List handles GET /api/users (admin only)
func (h *UserHandler) List(e *pbCore.RequestEvent) error {
	users, err := h.Users.List()
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, users)
}

// Create handles POST /api/users (admin only)
func (h *UserHandler) Create(e *pbCore.RequestEvent) error {
	var payload userPayload
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	user, err := h.Users.Create(payload.Username, payload.Password, payload.Role)
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"id":       user.ID,
		"username": user.Username,
	})
}

// Update handles PUT /api/users/{id} (admin only)
func (h *UserHandler) Update(e *pbCore.RequestEvent) error {
	var payload userPayload
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	if err := h.Users.Update(e.Request.PathValue("id"), payload.Username, payload.Password, payload.Role); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/users/{id} (admin only)
func (h *UserHandler) Delete(e *pbCore.RequestEvent) error {
	if err := h.Users.Delete(e.Request.PathValue("id")); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}
