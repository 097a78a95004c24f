package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

var ErrExperienceNotFound = errors.New("experience entry not found")

// ExperienceService handles work history entries
type ExperienceService struct {
	experienceRepo repository.ExperienceRepository
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(experienceRepo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

func (s *ExperienceService) ListExperience(activeOnly bool) ([]models.Experience, error) {
	entries, err := s.experienceRepo.List(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	return entries, nil
}

func (s *ExperienceService) CreateExperience(entry *models.Experience) (*models.Experience, error) {
	if strings.TrimSpace(entry.Company) == "" || strings.TrimSpace(entry.Position) == "" {
		return nil, ErrFieldsRequired
	}
	// A current position has no end date.
	if entry.IsCurrent {
		entry.EndDate = nil
	}
	if err := s.experienceRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create experience entry: %w", err)
	}
	return entry, nil
}

func (s *ExperienceService) UpdateExperience(id uint, apply func(*models.Experience)) (*models.Experience, error) {
	entry, err := s.experienceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to find experience entry: %w", err)
	}

	apply(entry)
	if strings.TrimSpace(entry.Company) == "" || strings.TrimSpace(entry.Position) == "" {
		return nil, ErrFieldsRequired
	}
	if entry.IsCurrent {
		entry.EndDate = nil
	}

	if err := s.experienceRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update experience entry: %w", err)
	}
	return entry, nil
}

func (s *ExperienceService) DeleteExperience(id uint) error {
	if err := s.experienceRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("failed to delete experience entry: %w", err)
	}
	return nil
}

func (s *ExperienceService) ReorderExperience(ids []uint) error {
	if len(ids) == 0 {
		return ErrNoIDsProvided
	}
	if err := s.experienceRepo.Reorder(ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("failed to reorder experience: %w", err)
	}
	return nil
}
