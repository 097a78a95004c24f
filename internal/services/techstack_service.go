package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

var ErrTechStackNotFound = errors.New("tech stack entry not found")

// TechStackService handles technology catalog entries
type TechStackService struct {
	techRepo repository.TechStackRepository
}

// NewTechStackService creates a new TechStackService
func NewTechStackService(techRepo repository.TechStackRepository) *TechStackService {
	return &TechStackService{techRepo: techRepo}
}

func (s *TechStackService) ListTechStack(activeOnly bool, category *models.TechCategory) ([]models.TechStack, error) {
	if category != nil && !category.Valid() {
		return nil, ErrInvalidCategory
	}
	entries, err := s.techRepo.List(activeOnly, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list tech stack: %w", err)
	}
	return entries, nil
}

func (s *TechStackService) CreateTechStack(entry *models.TechStack) (*models.TechStack, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return nil, ErrFieldsRequired
	}
	if !entry.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if err := s.techRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create tech stack entry: %w", err)
	}
	return entry, nil
}

func (s *TechStackService) UpdateTechStack(id uint, apply func(*models.TechStack)) (*models.TechStack, error) {
	entry, err := s.techRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechStackNotFound
		}
		return nil, fmt.Errorf("failed to find tech stack entry: %w", err)
	}

	apply(entry)
	if strings.TrimSpace(entry.Name) == "" {
		return nil, ErrFieldsRequired
	}
	if !entry.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	if err := s.techRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update tech stack entry: %w", err)
	}
	return entry, nil
}

func (s *TechStackService) DeleteTechStack(id uint) error {
	if err := s.techRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTechStackNotFound
		}
		return fmt.Errorf("failed to delete tech stack entry: %w", err)
	}
	return nil
}

func (s *TechStackService) ReorderTechStack(ids []uint) error {
	if len(ids) == 0 {
		return ErrNoIDsProvided
	}
	if err := s.techRepo.Reorder(ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTechStackNotFound
		}
		return fmt.Errorf("failed to reorder tech stack: %w", err)
	}
	return nil
}
