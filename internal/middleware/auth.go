package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// RequireAuth verifies the bearer token, loads the referenced admin, and
// attaches it to the request context for downstream handlers.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Access token required")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		admin, err := authService.ValidateToken(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				apierrors.Unauthorized(c, apierrors.ErrCodeTokenExpired, "Token has expired")
			case errors.Is(err, services.ErrTokenInvalid):
				apierrors.Unauthorized(c, apierrors.ErrCodeInvalidToken, "Invalid token")
			default:
				log.Error().Err(err).Msg("Auth middleware failure")
				apierrors.RespondWithError(c, 500,
					apierrors.NewAPIError(apierrors.ErrCodeAuthError, "Authentication failed"))
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdmin, admin)
		c.Next()
	}
}

// GetAdmin retrieves the authenticated admin from context
func GetAdmin(c *gin.Context) (*models.Admin, bool) {
	value, exists := c.Get(constants.ContextKeyAdmin)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}
