package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

var ErrArtNotFound = errors.New("art piece not found")

// ArtService handles art gallery business logic
type ArtService struct {
	artRepo repository.ArtRepository
}

// NewArtService creates a new ArtService
func NewArtService(artRepo repository.ArtRepository) *ArtService {
	return &ArtService{artRepo: artRepo}
}

// ListArtInput represents filters for listing art pieces
type ListArtInput struct {
	Category   *models.ArtCategory
	Featured   *bool
	Year       *int
	Search     string
	PublicOnly bool
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// CreateArtInput represents input for creating an art piece
type CreateArtInput struct {
	Title        string
	Slug         string
	Description  string
	Category     models.ArtCategory
	Medium       string
	Year         int
	ImageURL     string
	ThumbnailURL string
	Tags         []string
	Featured     bool
	Priority     int
	IsPublic     *bool
}

// UpdateArtInput represents input for updating an art piece
type UpdateArtInput struct {
	Title        *string
	Slug         *string
	Description  *string
	Category     *models.ArtCategory
	Medium       *string
	Year         *int
	ImageURL     *string
	ThumbnailURL *string
	Tags         []string
	Featured     *bool
	Priority     *int
	IsPublic     *bool
}

// ListArt returns art pieces matching the filter plus the total count
func (s *ArtService) ListArt(input ListArtInput) ([]models.Art, int64, error) {
	pieces, total, err := s.artRepo.List(repository.ArtFilter{
		Category:   input.Category,
		Featured:   input.Featured,
		Year:       input.Year,
		Search:     input.Search,
		PublicOnly: input.PublicOnly,
		SortBy:     input.SortBy,
		SortDesc:   input.SortDesc,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list art: %w", err)
	}
	return pieces, total, nil
}

// GetArtBySlug fetches an art piece by slug, counting a view for public callers.
func (s *ArtService) GetArtBySlug(slug string, publicOnly bool) (*models.Art, error) {
	art, err := s.artRepo.FindBySlug(slug, publicOnly)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtNotFound
		}
		return nil, fmt.Errorf("failed to find art: %w", err)
	}

	if publicOnly {
		if err := s.artRepo.IncrementViews(art.ID); err != nil {
			return nil, fmt.Errorf("failed to count view: %w", err)
		}
		art.ViewCount++
	}

	return art, nil
}

// CreateArt validates input, derives the slug, and persists the piece.
func (s *ArtService) CreateArt(input CreateArtInput) (*models.Art, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if err := validateURLs(input.ImageURL, input.ThumbnailURL); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(title)
	} else if !utils.IsValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	taken, err := s.artRepo.SlugExists(slug, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	art := &models.Art{
		Title:        title,
		Slug:         slug,
		Description:  input.Description,
		Category:     input.Category,
		Medium:       input.Medium,
		Year:         input.Year,
		ImageURL:     input.ImageURL,
		ThumbnailURL: input.ThumbnailURL,
		Tags:         input.Tags,
		Featured:     input.Featured,
		Priority:     input.Priority,
		IsPublic:     isPublic,
	}

	if err := s.artRepo.Create(art); err != nil {
		return nil, fmt.Errorf("failed to create art: %w", err)
	}

	return art, nil
}

// UpdateArt applies a partial update. The slug is only regenerated when the
// title changes and the caller did not set one explicitly.
func (s *ArtService) UpdateArt(id uint, input UpdateArtInput) (*models.Art, error) {
	art, err := s.artRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtNotFound
		}
		return nil, fmt.Errorf("failed to find art: %w", err)
	}

	newSlug := art.Slug
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
		if title != art.Title && input.Slug == nil {
			newSlug = utils.Slugify(title)
		}
		art.Title = title
	}

	if newSlug != art.Slug {
		taken, err := s.artRepo.SlugExists(newSlug, art.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
		art.Slug = newSlug
	}

	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		art.Category = *input.Category
	}
	if input.Description != nil {
		art.Description = *input.Description
	}
	if input.Medium != nil {
		art.Medium = *input.Medium
	}
	if input.Year != nil {
		art.Year = *input.Year
	}
	if input.ImageURL != nil {
		art.ImageURL = *input.ImageURL
	}
	if input.ThumbnailURL != nil {
		art.ThumbnailURL = *input.ThumbnailURL
	}
	if err := validateURLs(art.ImageURL, art.ThumbnailURL); err != nil {
		return nil, err
	}
	if input.Tags != nil {
		art.Tags = input.Tags
	}
	if input.Featured != nil {
		art.Featured = *input.Featured
	}
	if input.Priority != nil {
		art.Priority = *input.Priority
	}
	if input.IsPublic != nil {
		art.IsPublic = *input.IsPublic
	}

	if err := s.artRepo.Update(art); err != nil {
		return nil, fmt.Errorf("failed to update art: %w", err)
	}

	return art, nil
}

// DeleteArt hard-deletes an art piece.
func (s *ArtService) DeleteArt(id uint) error {
	if err := s.artRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtNotFound
		}
		return fmt.Errorf("failed to delete art: %w", err)
	}
	return nil
}

// LikeArt increments the like counter and returns the new count.
func (s *ArtService) LikeArt(id uint) (int64, error) {
	count, err := s.artRepo.IncrementLikes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrArtNotFound
		}
		return 0, fmt.Errorf("failed to like art: %w", err)
	}
	return count, nil
}
