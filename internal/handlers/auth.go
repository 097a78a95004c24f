package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/dto"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/middleware"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the admin and issues a bearer token. Only the password
// is supplied; the admin username is fixed.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	token, admin, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("Login failed")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin":   dto.ToAdminDTO(*admin),
	})
}

// Verify returns the admin referenced by the presented token.
func (h *AuthHandler) Verify(c *gin.Context) {
	admin, exists := middleware.GetAdmin(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": dto.ToAdminDTO(*admin)})
}

// ChangePassword requires the current password before accepting a new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
	}

	admin, exists := middleware.GetAdmin(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.authService.ChangePassword(admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, "Current password is incorrect")
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, "Password must be at least 6 characters")
		default:
			log.Error().Err(err).Msg("Change password failed")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// RequestReset emails a one-time recovery code. The response does not reveal
// whether the email matched an account.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	type RequestResetRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		log.Error().Err(err).Msg("Reset request failed")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email matches the admin account, a reset code has been sent"})
}

// ResetPassword consumes an emailed code and sets a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	type ResetPasswordRequest struct {
		Email           string `json:"email" binding:"required,email"`
		Code            string `json:"code" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	err := h.authService.ResetPassword(req.Email, req.Code, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			apierrors.BadRequest(c, "Password confirmation does not match")
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrResetCodeInvalid):
			apierrors.BadRequest(c, "Reset code is invalid or expired")
		default:
			log.Error().Err(err).Msg("Password reset failed")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
