package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// SettingHandler handles typed key-value settings HTTP requests
type SettingHandler struct {
	settingService *services.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settingService *services.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// List returns public settings, optionally filtered by category.
func (h *SettingHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin returns every setting.
func (h *SettingHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *SettingHandler) list(c *gin.Context, publicOnly bool) {
	var category *models.SettingCategory
	if raw := c.Query("category"); raw != "" {
		value := models.SettingCategory(raw)
		if !value.Valid() {
			apierrors.BadRequest(c, "Invalid category filter")
			return
		}
		category = &value
	}

	settings, err := h.settingService.ListSettings(category, publicOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list settings")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Get returns one public setting by key. Private keys look like they do not
// exist.
func (h *SettingHandler) Get(c *gin.Context) {
	h.get(c, true)
}

// GetAdmin returns any setting by key.
func (h *SettingHandler) GetAdmin(c *gin.Context) {
	h.get(c, false)
}

func (h *SettingHandler) get(c *gin.Context, publicOnly bool) {
	setting, err := h.settingService.GetSetting(c.Param("key"), publicOnly)
	if err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			apierrors.NotFound(c, "Setting not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch setting")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": setting})
}

// Create declares a new typed setting key.
func (h *SettingHandler) Create(c *gin.Context) {
	type CreateSettingRequest struct {
		Key        string      `json:"key" binding:"required"`
		Value      interface{} `json:"value"`
		Type       string      `json:"type"`
		Category   string      `json:"category"`
		IsPublic   bool        `json:"isPublic"`
		IsEditable *bool       `json:"isEditable"`
	}

	var req CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	setting, err := h.settingService.CreateSetting(services.CreateSettingInput{
		Key:        req.Key,
		Value:      req.Value,
		Type:       models.SettingType(req.Type),
		Category:   models.SettingCategory(req.Category),
		IsPublic:   req.IsPublic,
		IsEditable: req.IsEditable,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSettingKeyTaken):
			apierrors.Conflict(c, "A setting with this key already exists")
		case errors.Is(err, services.ErrInvalidSettingType),
			errors.Is(err, services.ErrValueTypeMismatch):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to create setting")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Setting created successfully", "setting": setting})
}

// Update writes a new value to an existing key.
func (h *SettingHandler) Update(c *gin.Context) {
	type UpdateSettingRequest struct {
		Value interface{} `json:"value"`
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	setting, err := h.settingService.UpdateSetting(c.Param("key"), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSettingNotFound):
			apierrors.NotFound(c, "Setting not found")
		case errors.Is(err, services.ErrSettingNotEditable):
			apierrors.BadRequest(c, "Setting is not editable")
		case errors.Is(err, services.ErrValueTypeMismatch):
			apierrors.BadRequest(c, "Value does not match the declared type")
		default:
			log.Error().Err(err).Msg("Failed to update setting")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Setting updated successfully", "setting": setting})
}

// BulkUpdate writes many keys at once; each key succeeds or fails on its own.
func (h *SettingHandler) BulkUpdate(c *gin.Context) {
	type BulkUpdateRequest struct {
		Settings map[string]interface{} `json:"settings" binding:"required"`
	}

	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}
	if len(req.Settings) == 0 {
		apierrors.BadRequest(c, "At least one setting is required")
		return
	}

	outcome := h.settingService.BulkUpdateSettings(req.Settings)
	c.JSON(http.StatusOK, gin.H{
		"message": "Settings processed",
		"updated": outcome.Updated,
		"failed":  outcome.Failed,
	})
}

// Delete removes a setting key entirely.
func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.settingService.DeleteSetting(c.Param("key")); err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			apierrors.NotFound(c, "Setting not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete setting")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting deleted successfully"})
}
