package repository

import (
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormSettingRepository is a GORM implementation of SettingRepository
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &GormSettingRepository{db: db}
}

func (r *GormSettingRepository) Create(setting *models.Setting) error {
	return r.db.Create(setting).Error
}

func (r *GormSettingRepository) FindByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *GormSettingRepository) List(category *models.SettingCategory, publicOnly bool) ([]models.Setting, error) {
	var settings []models.Setting
	query := r.db.Order("category ASC, key ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	if err := query.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *GormSettingRepository) Update(setting *models.Setting) error {
	return r.db.Save(setting).Error
}

func (r *GormSettingRepository) Delete(key string) error {
	result := r.db.Where("key = ?", key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
