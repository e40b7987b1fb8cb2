// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
}

func NewAuthHandler(authService *services.AuthService, config *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      config,
	}
}

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	ok, err := h.authService.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		utils.InternalErrorResponse(c, "Login failed")
		return
	}
	if !ok {
		utils.UnauthorizedResponse(c, "Invalid credentials")
		return
	}

	session, err := h.authService.IssueSession()
	if err != nil {
		utils.InternalErrorResponse(c, "Login failed")
		return
	}

	h.setSessionCookie(c, session.Token, h.config.Session.TTLHours*3600)
	utils.SuccessResponse(c, gin.H{})
}

// POST /api/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.config.Session.CookieName)
	if err := h.authService.RevokeSession(token); err != nil {
		utils.InternalErrorResponse(c, "Logout failed")
		return
	}

	h.setSessionCookie(c, "", -1)
	utils.SuccessResponse(c, gin.H{})
}

// GET /api/admin/check
func (h *AuthHandler) Check(c *gin.Context) {
	token, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || h.authService.ValidateSession(token) != nil {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

// POST /api/admin/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		Username        string `json:"username"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	username := req.Username
	if username == "" {
		username = h.config.Admin.Username
	}

	err := h.authService.ChangePassword(username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			utils.BadRequestResponse(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, "Current password is incorrect")
		default:
			utils.InternalErrorResponse(c, "Failed to change password")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Password changed successfully"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.config.Session.CookieName,
		value,
		maxAge,
		"/",
		"",
		h.config.Environment == "production",
		true,
	)
}
