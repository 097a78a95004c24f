package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormArtRepository is a GORM implementation of ArtRepository
type GormArtRepository struct {
	db *gorm.DB
}

// NewArtRepository creates a new ArtRepository
func NewArtRepository(db *gorm.DB) ArtRepository {
	return &GormArtRepository{db: db}
}

func (r *GormArtRepository) Create(art *models.Art) error {
	return r.db.Create(art).Error
}

func (r *GormArtRepository) FindByID(id uint) (*models.Art, error) {
	var art models.Art
	if err := r.db.First(&art, id).Error; err != nil {
		return nil, err
	}
	return &art, nil
}

func (r *GormArtRepository) FindBySlug(slug string, publicOnly bool) (*models.Art, error) {
	var art models.Art
	query := r.db.Where("slug = ?", slug)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	if err := query.First(&art).Error; err != nil {
		return nil, err
	}
	return &art, nil
}

var artSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"year":      "year",
	"viewCount": "view_count",
	"likeCount": "like_count",
}

func (r *GormArtRepository) List(filter ArtFilter) ([]models.Art, int64, error) {
	var pieces []models.Art

	query := r.db.Model(&models.Art{})

	if filter.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "featured DESC, priority DESC"
	if col, ok := artSortColumns[filter.SortBy]; ok {
		dir := "ASC"
		if filter.SortDesc {
			dir = "DESC"
		}
		order += ", " + col + " " + dir
	} else {
		order += ", created_at DESC"
	}
	order += ", id ASC"

	listQuery := query.Order(order).Scopes(paginate(filter.Limit, filter.Offset))

	if err := listQuery.Find(&pieces).Error; err != nil {
		return nil, 0, err
	}

	return pieces, total, nil
}

func (r *GormArtRepository) Update(art *models.Art) error {
	return r.db.Save(art).Error
}

func (r *GormArtRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Art{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormArtRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Art{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormArtRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Art{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *GormArtRepository) IncrementLikes(id uint) (int64, error) {
	result := r.db.Model(&models.Art{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var art models.Art
	if err := r.db.Select("like_count").First(&art, id).Error; err != nil {
		return 0, err
	}
	return art.LikeCount, nil
}
