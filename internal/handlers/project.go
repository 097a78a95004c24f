package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectRequest is shared between create and update; on update every field
// is optional.
type projectRequest struct {
	Title                *string    `json:"title"`
	Slug                 *string    `json:"slug"`
	Description          *string    `json:"description"`
	LongDescription      *string    `json:"longDescription"`
	Category             *string    `json:"category"`
	Status               *string    `json:"status"`
	Technologies         []string   `json:"technologies"`
	Features             []string   `json:"features"`
	Challenges           []string   `json:"challenges"`
	Learnings            []string   `json:"learnings"`
	Tags                 []string   `json:"tags"`
	GithubURL            *string    `json:"githubUrl"`
	LiveURL              *string    `json:"liveUrl"`
	DemoURL              *string    `json:"demoUrl"`
	ImageURL             *string    `json:"imageUrl"`
	Images               []string   `json:"images"`
	IsPublic             *bool      `json:"isPublic"`
	Featured             *bool      `json:"featured"`
	Priority             *int       `json:"priority"`
	CompletionPercentage *int       `json:"completionPercentage"`
	Difficulty           *int       `json:"difficulty"`
	TeamSize             *int       `json:"teamSize"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// List returns public projects with filtering and pagination.
func (h *ProjectHandler) List(c *gin.Context) {
	h.list(c, true, constants.DefaultPublicLimit)
}

// ListAdmin returns every project, including private ones.
func (h *ProjectHandler) ListAdmin(c *gin.Context) {
	h.list(c, false, constants.DefaultAdminLimit)
}

func (h *ProjectHandler) list(c *gin.Context, publicOnly bool, defaultLimit int) {
	params := utils.GetPaginationParams(c, defaultLimit)
	sortBy, sortDesc := parseSortQuery(c)

	input := services.ListProjectsInput{
		Search:     c.Query("search"),
		PublicOnly: publicOnly,
		SortBy:     sortBy,
		SortDesc:   sortDesc,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if raw := c.Query("category"); raw != "" {
		category := models.ProjectCategory(raw)
		if !category.Valid() {
			apierrors.BadRequest(c, "Invalid category filter")
			return
		}
		input.Category = &category
	}
	if raw := c.Query("status"); raw != "" {
		status := models.ProjectStatus(raw)
		if !status.Valid() {
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}
	input.Featured = parseBoolQuery(c, "featured")

	projects, total, err := h.projectService.ListProjects(input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list projects")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"pagination": utils.PaginationResponse{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

// GetBySlug returns one public project and counts the view.
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projectService.GetProjectBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch project")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// GetBySlugAdmin returns one project regardless of visibility, without
// counting a view.
func (h *ProjectHandler) GetBySlugAdmin(c *gin.Context) {
	project, err := h.projectService.GetProjectBySlug(c.Param("slug"), false)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		log.Error().Err(err).Msg("Failed to fetch project")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Like increments the like counter and returns the new count.
func (h *ProjectHandler) Like(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project id")
		return
	}

	likes, err := h.projectService.LikeProject(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		log.Error().Err(err).Msg("Failed to like project")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project liked", "likeCount": likes})
}

// Create creates a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	input := services.CreateProjectInput{
		Title:                str(req.Title),
		Slug:                 str(req.Slug),
		Description:          str(req.Description),
		LongDescription:      str(req.LongDescription),
		Category:             models.ProjectCategory(str(req.Category)),
		Status:               models.ProjectStatus(str(req.Status)),
		Technologies:         req.Technologies,
		Features:             req.Features,
		Challenges:           req.Challenges,
		Learnings:            req.Learnings,
		Tags:                 req.Tags,
		GithubURL:            str(req.GithubURL),
		LiveURL:              str(req.LiveURL),
		DemoURL:              str(req.DemoURL),
		ImageURL:             str(req.ImageURL),
		Images:               req.Images,
		IsPublic:             req.IsPublic,
		CompletionPercentage: req.CompletionPercentage,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
	}
	if req.Featured != nil {
		input.Featured = *req.Featured
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.Difficulty != nil {
		input.Difficulty = *req.Difficulty
	}
	if req.TeamSize != nil {
		input.TeamSize = *req.TeamSize
	}

	project, err := h.projectService.CreateProject(input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project": project})
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project id")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	input := services.UpdateProjectInput{
		Title:                req.Title,
		Slug:                 req.Slug,
		Description:          req.Description,
		LongDescription:      req.LongDescription,
		Technologies:         req.Technologies,
		Features:             req.Features,
		Challenges:           req.Challenges,
		Learnings:            req.Learnings,
		Tags:                 req.Tags,
		GithubURL:            req.GithubURL,
		LiveURL:              req.LiveURL,
		DemoURL:              req.DemoURL,
		ImageURL:             req.ImageURL,
		Images:               req.Images,
		IsPublic:             req.IsPublic,
		Featured:             req.Featured,
		Priority:             req.Priority,
		CompletionPercentage: req.CompletionPercentage,
		Difficulty:           req.Difficulty,
		TeamSize:             req.TeamSize,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
	}
	if req.Category != nil {
		category := models.ProjectCategory(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.projectService.UpdateProject(id, input)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "project": project})
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project id")
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete project")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// BulkUpdate applies one payload to many projects.
func (h *ProjectHandler) BulkUpdate(c *gin.Context) {
	type BulkUpdateRequest struct {
		IDs    []uint                 `json:"ids" binding:"required,min=1"`
		Fields map[string]interface{} `json:"fields" binding:"required"`
	}

	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validationDetails(err))
		return
	}

	updated, err := h.projectService.BulkUpdateProjects(req.IDs, req.Fields)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoIDsProvided),
			errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to bulk-update projects")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projects updated successfully",
		"updated": updated,
	})
}

// respondServiceError maps project service errors to API responses.
func (h *ProjectHandler) respondServiceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrSlugTaken):
		apierrors.Conflict(c, "A project with this slug already exists")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidSlug),
		errors.Is(err, services.ErrInvalidURL),
		errors.Is(err, services.ErrInvalidCompletion):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Msg(logMsg)
		apierrors.InternalError(c, "")
	}
}
