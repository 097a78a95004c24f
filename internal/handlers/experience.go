package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// ExperienceHandler handles work history HTTP requests
type ExperienceHandler struct {
	experienceService *services.ExperienceService
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(experienceService *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

type experienceRequest struct {
	Company      *string    `json:"company"`
	Position     *string    `json:"position"`
	Location     *string    `json:"location"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    *bool      `json:"isCurrent"`
	Description  *string    `json:"description"`
	Achievements []string   `json:"achievements"`
	Order        *int       `json:"order"`
	IsActive     *bool      `json:"isActive"`
}

func (r experienceRequest) applyTo(entry *models.Experience) {
	if r.Company != nil {
		entry.Company = *r.Company
	}
	if r.Position != nil {
		entry.Position = *r.Position
	}
	if r.Location != nil {
		entry.Location = *r.Location
	}
	if r.StartDate != nil {
		entry.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		entry.EndDate = r.EndDate
	}
	if r.IsCurrent != nil {
		entry.IsCurrent = *r.IsCurrent
	}
	if r.Description != nil {
		entry.Description = *r.Description
	}
	if r.Achievements != nil {
		entry.Achievements = r.Achievements
	}
	if r.Order != nil {
		entry.Order = *r.Order
	}
	if r.IsActive != nil {
		entry.IsActive = *r.IsActive
	}
}

// List returns active entries in display order.
func (h *ExperienceHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin returns every entry, hidden ones included.
func (h *ExperienceHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *ExperienceHandler) list(c *gin.Context, activeOnly bool) {
	entries, err := h.experienceService.ListExperience(activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list experience")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": entries})
}

// Create creates a new experience entry.
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry := &models.Experience{IsActive: true}
	req.applyTo(entry)

	created, err := h.experienceService.CreateExperience(entry)
	if err != nil {
		if errors.Is(err, services.ErrFieldsRequired) {
			apierrors.BadRequest(c, "Company and position are required")
			return
		}
		log.Error().Err(err).Msg("Failed to create experience entry")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Experience entry created successfully", "experience": created})
}

// Update applies a partial update to an experience entry.
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid experience id")
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry, err := h.experienceService.UpdateExperience(id, req.applyTo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExperienceNotFound):
			apierrors.NotFound(c, "Experience entry not found")
		case errors.Is(err, services.ErrFieldsRequired):
			apierrors.BadRequest(c, "Company and position are required")
		default:
			log.Error().Err(err).Msg("Failed to update experience entry")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience entry updated successfully", "experience": entry})
}

// Delete removes an experience entry.
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid experience id")
		return
	}

	if err := h.experienceService.DeleteExperience(id); err != nil {
		if errors.Is(err, services.ErrExperienceNotFound) {
			apierrors.NotFound(c, "Experience entry not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete experience entry")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience entry deleted successfully"})
}

// Reorder rewrites display order to match the given id sequence.
func (h *ExperienceHandler) Reorder(c *gin.Context) {
	type ReorderRequest struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.experienceService.ReorderExperience(req.IDs); err != nil {
		switch {
		case errors.Is(err, services.ErrExperienceNotFound):
			apierrors.NotFound(c, "Experience entry not found")
		case errors.Is(err, services.ErrNoIDsProvided):
			apierrors.BadRequest(c, "At least one id is required")
		default:
			log.Error().Err(err).Msg("Failed to reorder experience")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience entries reordered successfully"})
}
