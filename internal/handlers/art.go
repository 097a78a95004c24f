package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

// ArtHandler handles art gallery HTTP requests
type ArtHandler struct {
	artService *services.ArtService
}

// NewArtHandler creates a new ArtHandler
func NewArtHandler(artService *services.ArtService) *ArtHandler {
	return &ArtHandler{artService: artService}
}

type artRequest struct {
	Title        *string  `json:"title"`
	Slug         *string  `json:"slug"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Medium       *string  `json:"medium"`
	Year         *int     `json:"year"`
	ImageURL     *string  `json:"imageUrl"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Tags         []string `json:"tags"`
	Featured     *bool    `json:"featured"`
	Priority     *int     `json:"priority"`
	IsPublic     *bool    `json:"isPublic"`
}

// List returns public art pieces with filtering and pagination.
func (h *ArtHandler) List(c *gin.Context) {
	h.list(c, true, constants.DefaultPublicLimit)
}

// ListAdmin returns every art piece, including private ones.
func (h *ArtHandler) ListAdmin(c *gin.Context) {
	h.list(c, false, constants.DefaultAdminLimit)
}

func (h *ArtHandler) list(c *gin.Context, publicOnly bool, defaultLimit int) {
	params := utils.GetPaginationParams(c, defaultLimit)
	sortBy, sortDesc := parseSortQuery(c)

	input := services.ListArtInput{
		Search:     c.Query("search"),
		PublicOnly: publicOnly,
		SortBy:     sortBy,
		SortDesc:   sortDesc,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if raw := c.Query("category"); raw != "" {
		category := models.ArtCategory(raw)
		if !category.Valid() {
			apierrors.BadRequest(c, "Invalid category filter")
			return
		}
		input.Category = &category
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid year filter")
			return
		}
		input.Year = &year
	}
	input.Featured = parseBoolQuery(c, "featured")

	pieces, total, err := h.artService.ListArt(input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list art")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"art": pieces,
		"pagination": utils.PaginationResponse{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

// GetBySlug returns one public art piece and counts the view.
func (h *ArtHandler) GetBySlug(c *gin.Context) {
	art, err := h.artService.GetArtBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, services.ErrArtNotFound) {
			apierrors.NotFound(c, "Art piece not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch art")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"art": art})
}

// GetBySlugAdmin returns one art piece regardless of visibility.
func (h *ArtHandler) GetBySlugAdmin(c *gin.Context) {
	art, err := h.artService.GetArtBySlug(c.Param("slug"), false)
	if err != nil {
		if errors.Is(err, services.ErrArtNotFound) {
			apierrors.NotFound(c, "Art piece not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch art")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"art": art})
}

// Like increments the like counter and returns the new count.
func (h *ArtHandler) Like(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid art id")
		return
	}

	likes, err := h.artService.LikeArt(id)
	if err != nil {
		if errors.Is(err, services.ErrArtNotFound) {
			apierrors.NotFound(c, "Art piece not found")
			return
		}
		log.Error().Err(err).Msg("Failed to like art")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Art piece liked", "likeCount": likes})
}

// Create creates a new art piece.
func (h *ArtHandler) Create(c *gin.Context) {
	var req artRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	input := services.CreateArtInput{
		Title:        str(req.Title),
		Slug:         str(req.Slug),
		Description:  str(req.Description),
		Category:     models.ArtCategory(str(req.Category)),
		Medium:       str(req.Medium),
		ImageURL:     str(req.ImageURL),
		ThumbnailURL: str(req.ThumbnailURL),
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
	}
	if req.Year != nil {
		input.Year = *req.Year
	}
	if req.Featured != nil {
		input.Featured = *req.Featured
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}

	art, err := h.artService.CreateArt(input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to create art")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Art piece created successfully", "art": art})
}

// Update applies a partial update to an art piece.
func (h *ArtHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid art id")
		return
	}

	var req artRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	input := services.UpdateArtInput{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Medium:       req.Medium,
		Year:         req.Year,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Tags:         req.Tags,
		Featured:     req.Featured,
		Priority:     req.Priority,
		IsPublic:     req.IsPublic,
	}
	if req.Category != nil {
		category := models.ArtCategory(*req.Category)
		input.Category = &category
	}

	art, err := h.artService.UpdateArt(id, input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update art")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Art piece updated successfully", "art": art})
}

// Delete removes an art piece.
func (h *ArtHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid art id")
		return
	}

	if err := h.artService.DeleteArt(id); err != nil {
		if errors.Is(err, services.ErrArtNotFound) {
			apierrors.NotFound(c, "Art piece not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete art")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Art piece deleted successfully"})
}

func (h *ArtHandler) respondServiceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, services.ErrArtNotFound):
		apierrors.NotFound(c, "Art piece not found")
	case errors.Is(err, services.ErrSlugTaken):
		apierrors.Conflict(c, "An art piece with this slug already exists")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidSlug),
		errors.Is(err, services.ErrInvalidURL):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Msg(logMsg)
		apierrors.InternalError(c, "")
	}
}
