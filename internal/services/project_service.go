package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrSlugTaken         = errors.New("slug already exists")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidSlug       = errors.New("slug may only contain lowercase letters, digits, and hyphens")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrInvalidCompletion = errors.New("completion percentage must be between 0 and 100")
	ErrNoIDsProvided     = errors.New("at least one id is required")
)

// CompletionFloor maps a project status to its minimum completion percentage.
func CompletionFloor(status models.ProjectStatus) int {
	switch status {
	case models.ProjectStatusCompleted:
		return 100
	case models.ProjectStatusInProgress:
		return 50
	case models.ProjectStatusPlanning:
		return 10
	default:
		return 0
	}
}

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	Category   *models.ProjectCategory
	Status     *models.ProjectStatus
	Featured   *bool
	Search     string
	PublicOnly bool
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title                string
	Slug                 string
	Description          string
	LongDescription      string
	Category             models.ProjectCategory
	Status               models.ProjectStatus
	Technologies         []string
	Features             []string
	Challenges           []string
	Learnings            []string
	Tags                 []string
	GithubURL            string
	LiveURL              string
	DemoURL              string
	ImageURL             string
	Images               []string
	IsPublic             *bool
	Featured             bool
	Priority             int
	CompletionPercentage *int
	Difficulty           int
	TeamSize             int
	StartDate            *time.Time
	EndDate              *time.Time
}

// UpdateProjectInput represents input for updating a project; nil fields are
// left untouched
type UpdateProjectInput struct {
	Title                *string
	Slug                 *string
	Description          *string
	LongDescription      *string
	Category             *models.ProjectCategory
	Status               *models.ProjectStatus
	Technologies         []string
	Features             []string
	Challenges           []string
	Learnings            []string
	Tags                 []string
	GithubURL            *string
	LiveURL              *string
	DemoURL              *string
	ImageURL             *string
	Images               []string
	IsPublic             *bool
	Featured             *bool
	Priority             *int
	CompletionPercentage *int
	Difficulty           *int
	TeamSize             *int
	StartDate            *time.Time
	EndDate              *time.Time
}

// ListProjects returns projects matching the filter plus the total count
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(repository.ProjectFilter{
		Category:   input.Category,
		Status:     input.Status,
		Featured:   input.Featured,
		Search:     input.Search,
		PublicOnly: input.PublicOnly,
		SortBy:     input.SortBy,
		SortDesc:   input.SortDesc,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProjectBySlug fetches a project by slug. For public callers the view
// counter is incremented as a side effect.
func (s *ProjectService) GetProjectBySlug(slug string, publicOnly bool) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(slug, publicOnly)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if publicOnly {
		if err := s.projectRepo.IncrementViews(project.ID); err != nil {
			return nil, fmt.Errorf("failed to count view: %w", err)
		}
		project.ViewCount++
	}

	return project, nil
}

// GetProject fetches a project by ID.
func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject validates input, derives the slug and completion percentage,
// and persists the project. Derivation happens here, before persistence, not
// in model callbacks.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if input.Status == "" {
		input.Status = models.ProjectStatusPlanning
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := validateURLs(input.GithubURL, input.LiveURL, input.DemoURL, input.ImageURL); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(title)
	} else if !utils.IsValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	taken, err := s.projectRepo.SlugExists(slug, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	completion := CompletionFloor(input.Status)
	if input.CompletionPercentage != nil {
		completion = *input.CompletionPercentage
	}
	if completion < 0 || completion > 100 {
		return nil, ErrInvalidCompletion
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}
	teamSize := input.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}

	project := &models.Project{
		Title:                title,
		Slug:                 slug,
		Description:          input.Description,
		LongDescription:      input.LongDescription,
		Category:             input.Category,
		Status:               input.Status,
		Technologies:         input.Technologies,
		Features:             input.Features,
		Challenges:           input.Challenges,
		Learnings:            input.Learnings,
		Tags:                 input.Tags,
		GithubURL:            input.GithubURL,
		LiveURL:              input.LiveURL,
		DemoURL:              input.DemoURL,
		ImageURL:             input.ImageURL,
		Images:               input.Images,
		IsPublic:             isPublic,
		Featured:             input.Featured,
		Priority:             input.Priority,
		CompletionPercentage: completion,
		Difficulty:           input.Difficulty,
		TeamSize:             teamSize,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject applies a partial update. The slug is re-derived only when
// the title changes and the caller did not supply a slug; the completion
// percentage only rises to meet the new status floor unless the caller
// explicitly set a value.
func (s *ProjectService) UpdateProject(id uint, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	newSlug := project.Slug
	if input.Slug != nil {
		if !utils.IsValidSlug(*input.Slug) {
			return nil, ErrInvalidSlug
		}
		newSlug = *input.Slug
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		if title != project.Title && input.Slug == nil {
			newSlug = utils.Slugify(title)
		}
		project.Title = title
	}

	if newSlug != project.Slug {
		taken, err := s.projectRepo.SlugExists(newSlug, project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
		project.Slug = newSlug
	}

	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		project.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		project.Status = *input.Status
	}

	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.LongDescription != nil {
		project.LongDescription = *input.LongDescription
	}
	if input.Technologies != nil {
		project.Technologies = input.Technologies
	}
	if input.Features != nil {
		project.Features = input.Features
	}
	if input.Challenges != nil {
		project.Challenges = input.Challenges
	}
	if input.Learnings != nil {
		project.Learnings = input.Learnings
	}
	if input.Tags != nil {
		project.Tags = input.Tags
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.DemoURL != nil {
		project.DemoURL = *input.DemoURL
	}
	if input.ImageURL != nil {
		project.ImageURL = *input.ImageURL
	}
	if input.Images != nil {
		project.Images = input.Images
	}
	if err := validateURLs(project.GithubURL, project.LiveURL, project.DemoURL, project.ImageURL); err != nil {
		return nil, err
	}
	if input.IsPublic != nil {
		project.IsPublic = *input.IsPublic
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.Difficulty != nil {
		project.Difficulty = *input.Difficulty
	}
	if input.TeamSize != nil {
		project.TeamSize = *input.TeamSize
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}

	if input.CompletionPercentage != nil {
		if *input.CompletionPercentage < 0 || *input.CompletionPercentage > 100 {
			return nil, ErrInvalidCompletion
		}
		project.CompletionPercentage = *input.CompletionPercentage
	} else if floor := CompletionFloor(project.Status); project.CompletionPercentage < floor {
		project.CompletionPercentage = floor
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject hard-deletes a project.
func (s *ProjectService) DeleteProject(id uint) error {
	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// LikeProject increments the like counter and returns the new count.
// Repeated likes from the same caller are not deduplicated.
func (s *ProjectService) LikeProject(id uint) (int64, error) {
	count, err := s.projectRepo.IncrementLikes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, fmt.Errorf("failed to like project: %w", err)
	}
	return count, nil
}

// bulkUpdatableColumns maps the fields callers may bulk-update to columns.
var bulkUpdatableColumns = map[string]string{
	"isPublic": "is_public",
	"featured": "featured",
	"priority": "priority",
	"category": "category",
	"status":   "status",
}

// BulkUpdateProjects applies one payload to a set of ids in one statement and
// returns the number of rows touched.
func (s *ProjectService) BulkUpdateProjects(ids []uint, fields map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDsProvided
	}

	updates := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		column, ok := bulkUpdatableColumns[name]
		if !ok {
			return 0, fmt.Errorf("field %q cannot be bulk-updated", name)
		}
		switch column {
		case "category":
			category, ok := value.(string)
			if !ok || !models.ProjectCategory(category).Valid() {
				return 0, ErrInvalidCategory
			}
		case "status":
			status, ok := value.(string)
			if !ok || !models.ProjectStatus(status).Valid() {
				return 0, ErrInvalidStatus
			}
		}
		updates[column] = value
	}
	if len(updates) == 0 {
		return 0, errors.New("no updatable fields provided")
	}

	updated, err := s.projectRepo.BulkUpdate(ids, updates)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk-update projects: %w", err)
	}
	return updated, nil
}

// validateURLs checks that every non-empty value parses as an absolute
// http(s) URL.
func validateURLs(urls ...string) error {
	for _, raw := range urls {
		if raw == "" {
			continue
		}
		parsed, err := url.ParseRequestURI(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
		}
	}
	return nil
}
