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

// TechStackHandler handles technology catalog HTTP requests
type TechStackHandler struct {
	techService *services.TechStackService
}

// NewTechStackHandler creates a new TechStackHandler
func NewTechStackHandler(techService *services.TechStackService) *TechStackHandler {
	return &TechStackHandler{techService: techService}
}

type techStackRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Icon        *string `json:"icon"`
	Proficiency *int    `json:"proficiency"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r techStackRequest) applyTo(entry *models.TechStack) {
	if r.Name != nil {
		entry.Name = *r.Name
	}
	if r.Category != nil {
		entry.Category = models.TechCategory(*r.Category)
	}
	if r.Icon != nil {
		entry.Icon = *r.Icon
	}
	if r.Proficiency != nil {
		entry.Proficiency = *r.Proficiency
	}
	if r.Order != nil {
		entry.Order = *r.Order
	}
	if r.IsActive != nil {
		entry.IsActive = *r.IsActive
	}
}

// List returns active entries, optionally filtered by category.
func (h *TechStackHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin returns every entry, hidden ones included.
func (h *TechStackHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *TechStackHandler) list(c *gin.Context, activeOnly bool) {
	var category *models.TechCategory
	if raw := c.Query("category"); raw != "" {
		value := models.TechCategory(raw)
		category = &value
	}

	entries, err := h.techService.ListTechStack(activeOnly, category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			apierrors.BadRequest(c, "Invalid category filter")
			return
		}
		log.Error().Err(err).Msg("Failed to list tech stack")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"techstack": entries})
}

// Create creates a new tech stack entry.
func (h *TechStackHandler) Create(c *gin.Context) {
	var req techStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry := &models.TechStack{IsActive: true}
	req.applyTo(entry)

	created, err := h.techService.CreateTechStack(entry)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFieldsRequired):
			apierrors.BadRequest(c, "Name is required")
		case errors.Is(err, services.ErrInvalidCategory):
			apierrors.BadRequest(c, "Invalid category")
		default:
			log.Error().Err(err).Msg("Failed to create tech stack entry")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tech stack entry created successfully", "techstack": created})
}

// Update applies a partial update to a tech stack entry.
func (h *TechStackHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid tech stack id")
		return
	}

	var req techStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	entry, err := h.techService.UpdateTechStack(id, req.applyTo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTechStackNotFound):
			apierrors.NotFound(c, "Tech stack entry not found")
		case errors.Is(err, services.ErrFieldsRequired):
			apierrors.BadRequest(c, "Name is required")
		case errors.Is(err, services.ErrInvalidCategory):
			apierrors.BadRequest(c, "Invalid category")
		default:
			log.Error().Err(err).Msg("Failed to update tech stack entry")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tech stack entry updated successfully", "techstack": entry})
}

// Delete removes a tech stack entry.
func (h *TechStackHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid tech stack id")
		return
	}

	if err := h.techService.DeleteTechStack(id); err != nil {
		if errors.Is(err, services.ErrTechStackNotFound) {
			apierrors.NotFound(c, "Tech stack entry not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete tech stack entry")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tech stack entry deleted successfully"})
}

// Reorder rewrites display order to match the given id sequence.
func (h *TechStackHandler) Reorder(c *gin.Context) {
	type ReorderRequest struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.techService.ReorderTechStack(req.IDs); err != nil {
		switch {
		case errors.Is(err, services.ErrTechStackNotFound):
			apierrors.NotFound(c, "Tech stack entry not found")
		case errors.Is(err, services.ErrNoIDsProvided):
			apierrors.BadRequest(c, "At least one id is required")
		default:
			log.Error().Err(err).Msg("Failed to reorder tech stack")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tech stack entries reordered successfully"})
}
