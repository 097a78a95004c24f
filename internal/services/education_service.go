package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

var (
	ErrEducationNotFound = errors.New("education entry not found")
	ErrFieldsRequired    = errors.New("required fields are missing")
)

// EducationService handles education timeline entries
type EducationService struct {
	educationRepo repository.EducationRepository
}

// NewEducationService creates a new EducationService
func NewEducationService(educationRepo repository.EducationRepository) *EducationService {
	return &EducationService{educationRepo: educationRepo}
}

// ListEducation lists entries in display order; activeOnly hides soft-hidden rows.
func (s *EducationService) ListEducation(activeOnly bool) ([]models.Education, error) {
	entries, err := s.educationRepo.List(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	return entries, nil
}

// CreateEducation persists a new entry.
func (s *EducationService) CreateEducation(entry *models.Education) (*models.Education, error) {
	if strings.TrimSpace(entry.Institution) == "" || strings.TrimSpace(entry.Degree) == "" {
		return nil, ErrFieldsRequired
	}
	if err := s.educationRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create education entry: %w", err)
	}
	return entry, nil
}

// UpdateEducation saves changes to an existing entry.
func (s *EducationService) UpdateEducation(id uint, apply func(*models.Education)) (*models.Education, error) {
	entry, err := s.educationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, fmt.Errorf("failed to find education entry: %w", err)
	}

	apply(entry)
	if strings.TrimSpace(entry.Institution) == "" || strings.TrimSpace(entry.Degree) == "" {
		return nil, ErrFieldsRequired
	}

	if err := s.educationRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update education entry: %w", err)
	}
	return entry, nil
}

// DeleteEducation removes an entry.
func (s *EducationService) DeleteEducation(id uint) error {
	if err := s.educationRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEducationNotFound
		}
		return fmt.Errorf("failed to delete education entry: %w", err)
	}
	return nil
}

// ReorderEducation rewrites each entry's order to its index in ids.
func (s *EducationService) ReorderEducation(ids []uint) error {
	if len(ids) == 0 {
		return ErrNoIDsProvided
	}
	if err := s.educationRepo.Reorder(ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEducationNotFound
		}
		return fmt.Errorf("failed to reorder education: %w", err)
	}
	return nil
}
