package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormAdminRepository is a GORM implementation of AdminRepository
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *GormAdminRepository) FindByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

func (r *GormAdminRepository) StoreReset(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *GormAdminRepository) FindActiveReset(email string, now time.Time) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.
		Where("email = ? AND consumed_at IS NULL AND expires_at > ?", email, now).
		Order("created_at DESC").
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *GormAdminRepository) ConsumeReset(reset *models.PasswordReset, now time.Time) error {
	reset.ConsumedAt = &now
	return r.db.Model(reset).Update("consumed_at", now).Error
}
