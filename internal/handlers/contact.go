package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit accepts a public contact form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	type SubmitRequest struct {
		Name    string `json:"name" binding:"required,max=100"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required,max=200"`
		Message string `json:"message" binding:"required,max=5000"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	contact, err := h.contactService.SubmitContact(services.SubmitContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to save contact submission")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"id":      contact.ID,
	})
}

// List returns submissions for the admin inbox.
func (h *ContactHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultAdminLimit)

	var status *models.ContactStatus
	if raw := c.Query("status"); raw != "" {
		value := models.ContactStatus(raw)
		if !value.Valid() {
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
		status = &value
	}

	contacts, total, err := h.contactService.ListContacts(status, params.Limit, params.Offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list contacts")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"pagination": utils.PaginationResponse{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

// Get returns one submission; a new submission flips to read on first fetch.
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact id")
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch contact")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// UpdateStatus sets the triage status explicitly.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	contact, err := h.contactService.UpdateContactStatus(id, models.ContactStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactNotFound):
			apierrors.NotFound(c, "Contact not found")
		case errors.Is(err, services.ErrInvalidContactStatus):
			apierrors.BadRequest(c, "Invalid contact status")
		default:
			log.Error().Err(err).Msg("Failed to update contact status")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated successfully", "contact": contact})
}

// Delete removes a submission.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact id")
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete contact")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
