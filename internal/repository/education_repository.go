package repository

import (
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormEducationRepository is a GORM implementation of EducationRepository
type GormEducationRepository struct {
	db *gorm.DB
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &GormEducationRepository{db: db}
}

func (r *GormEducationRepository) Create(entry *models.Education) error {
	return r.db.Create(entry).Error
}

func (r *GormEducationRepository) FindByID(id uint) (*models.Education, error) {
	var entry models.Education
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormEducationRepository) List(activeOnly bool) ([]models.Education, error) {
	var entries []models.Education
	query := r.db.Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormEducationRepository) Update(entry *models.Education) error {
	return r.db.Save(entry).Error
}

func (r *GormEducationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder rewrites each row's order to its position index. The whole rewrite
// runs in one transaction so a mid-sequence failure cannot leave a partial
// order behind.
func (r *GormEducationRepository) Reorder(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(&models.Education{}).Where("id = ?", id).
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
