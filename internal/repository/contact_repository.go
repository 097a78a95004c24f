package repository

import (
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *GormContactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormContactRepository) List(filter ContactFilter) ([]models.Contact, int64, error) {
	var contacts []models.Contact

	query := r.db.Model(&models.Contact{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC, id DESC").
		Scopes(paginate(filter.Limit, filter.Offset))

	if err := listQuery.Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *GormContactRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
