package repository

import (
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormExperienceRepository is a GORM implementation of ExperienceRepository
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &GormExperienceRepository{db: db}
}

func (r *GormExperienceRepository) Create(entry *models.Experience) error {
	return r.db.Create(entry).Error
}

func (r *GormExperienceRepository) FindByID(id uint) (*models.Experience, error) {
	var entry models.Experience
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormExperienceRepository) List(activeOnly bool) ([]models.Experience, error) {
	var entries []models.Experience
	query := r.db.Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormExperienceRepository) Update(entry *models.Experience) error {
	return r.db.Save(entry).Error
}

func (r *GormExperienceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormExperienceRepository) Reorder(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(&models.Experience{}).Where("id = ?", id).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
