package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// UploadHandler handles image upload HTTP requests
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores a multipart image under the given category and returns its
// public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		apierrors.BadRequest(c, "An image file is required")
		return
	}

	category := c.DefaultPostForm("category", "general")

	url, err := h.uploadService.SaveImage(file, category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			apierrors.RespondWithError(c, http.StatusBadRequest,
				apierrors.NewAPIError(apierrors.ErrCodeInvalidFileType, "Only image uploads are accepted"))
		case errors.Is(err, services.ErrFileTooLarge):
			apierrors.RespondWithError(c, http.StatusBadRequest,
				apierrors.NewAPIError(apierrors.ErrCodeFileTooLarge, "File exceeds the maximum upload size"))
		case errors.Is(err, services.ErrInvalidUploadCategory):
			apierrors.BadRequest(c, "Invalid upload category")
		default:
			log.Error().Err(err).Msg("Failed to store upload")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully", "url": url})
}

// Delete removes an uploaded file by its public URL path.
func (h *UploadHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		URL string `json:"url" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	if err := h.uploadService.Delete(req.URL); err != nil {
		if errors.Is(err, services.ErrUploadNotFound) {
			apierrors.NotFound(c, "Uploaded file not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete upload")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
