package repository

import (
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormTechStackRepository is a GORM implementation of TechStackRepository
type GormTechStackRepository struct {
	db *gorm.DB
}

// NewTechStackRepository creates a new TechStackRepository
func NewTechStackRepository(db *gorm.DB) TechStackRepository {
	return &GormTechStackRepository{db: db}
}

func (r *GormTechStackRepository) Create(entry *models.TechStack) error {
	return r.db.Create(entry).Error
}

func (r *GormTechStackRepository) FindByID(id uint) (*models.TechStack, error) {
	var entry models.TechStack
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormTechStackRepository) List(activeOnly bool, category *models.TechCategory) ([]models.TechStack, error) {
	var entries []models.TechStack
	query := r.db.Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormTechStackRepository) Update(entry *models.TechStack) error {
	return r.db.Save(entry).Error
}

func (r *GormTechStackRepository) Delete(id uint) error {
	result := r.db.Delete(&models.TechStack{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTechStackRepository) Reorder(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(&models.TechStack{}).Where("id = ?", id).
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
