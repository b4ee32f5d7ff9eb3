package handler

import (
	"errors"
	"net/http"

	"github.com/FrancoCalegari/demobodega/internal/core"
	"github.com/FrancoCalegari/demobodega/internal/service"
	"github.com/FrancoCalegari/demobodega/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type AuthHandler struct {
	Auth   *service.AuthService
	Secret []byte
}

func NewAuthHandler(auth *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{Auth: auth, Secret: secret}
}

// Login handles POST /api/auth/login. Failed logins answer 200 with
// success:false, matching what the admin login form expects.
func (h *AuthHandler) Login(e *pbCore.RequestEvent) error {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := e.BindBody(&creds); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	identity, err := h.Auth.Login(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			return e.JSON(http.StatusOK, map[string]any{"success": false, "error": err.Error()})
		}
		return apiError(e, err)
	}

	token, err := middleware.IssueSession(*identity, h.Secret)
	if err != nil {
		return apiError(e, err)
	}
	middleware.SetSessionCookie(e, token)

	return e.JSON(http.StatusOK, map[string]any{"success": true, "user": identity})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(e *pbCore.RequestEvent) error {
	middleware.ClearSessionCookie(e)
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}

// Check handles GET /api/auth/check
func (h *AuthHandler) Check(e *pbCore.RequestEvent) error {
	identity := middleware.SessionIdentity(e, h.Secret)
	if identity == nil {
		return e.JSON(http.StatusOK, map[string]any{"authenticated": false})
	}
	return e.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      identity.Username,
		"role":          identity.Role,
	})
}
