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

// EducationHandler handles education timeline HTTP requests
type EducationHandler struct {
	educationService *services.EducationService
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(educationService *services.EducationService) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

type educationRequest struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartYear   *int    `json:"startYear"`
	EndYear     *int    `json:"endYear"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r educationRequest) applyTo(entry *models.Education) {
	if r.Institution != nil {
		entry.Institution = *r.Institution
	}
	if r.Degree != nil {
		entry.Degree = *r.Degree
	}
	if r.Field != nil {
		entry.Field = *r.Field
	}
	if r.StartYear != nil {
		entry.StartYear = *r.StartYear
	}
	if r.EndYear != nil {
		entry.EndYear = *r.EndYear
	}
	if r.Description != nil {
		entry.Description = *r.Description
	}
	if r.Order != nil {
		entry.Order = *r.Order
	}
	if r.IsActive != nil {
		entry.IsActive = *r.IsActive
	}
}

// List returns active entries in display order.
func (h *EducationHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin returns every entry, hidden ones included.
func (h *EducationHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *EducationHandler) list(c *gin.Context, activeOnly bool) {
	entries, err := h.educationService.ListEducation(activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list education")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"education": entries})
}

// Create creates a new education entry.
func (h *EducationHandler) Create(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry := &models.Education{IsActive: true}
	req.applyTo(entry)

	created, err := h.educationService.CreateEducation(entry)
	if err != nil {
		if errors.Is(err, services.ErrFieldsRequired) {
			apierrors.BadRequest(c, "Institution and degree are required")
			return
		}
		log.Error().Err(err).Msg("Failed to create education entry")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Education entry created successfully", "education": created})
}

// Update applies a partial update to an education entry.
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid education id")
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry, err := h.educationService.UpdateEducation(id, req.applyTo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEducationNotFound):
			apierrors.NotFound(c, "Education entry not found")
		case errors.Is(err, services.ErrFieldsRequired):
			apierrors.BadRequest(c, "Institution and degree are required")
		default:
			log.Error().Err(err).Msg("Failed to update education entry")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education entry updated successfully", "education": entry})
}

// Delete removes an education entry.
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid education id")
		return
	}

	if err := h.educationService.DeleteEducation(id); err != nil {
		if errors.Is(err, services.ErrEducationNotFound) {
			apierrors.NotFound(c, "Education entry not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete education entry")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education entry deleted successfully"})
}

// Reorder rewrites display order to match the given id sequence.
func (h *EducationHandler) Reorder(c *gin.Context) {
	type ReorderRequest struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.educationService.ReorderEducation(req.IDs); err != nil {
		switch {
		case errors.Is(err, services.ErrEducationNotFound):
			apierrors.NotFound(c, "Education entry not found")
		case errors.Is(err, services.ErrNoIDsProvided):
			apierrors.BadRequest(c, "At least one id is required")
		default:
			log.Error().Err(err).Msg("Failed to reorder education")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education entries reordered successfully"})
}
