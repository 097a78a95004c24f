package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *GormProjectRepository) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) FindBySlug(slug string, publicOnly bool) (*models.Project, error) {
	var project models.Project
	query := r.db.Where("slug = ?", slug)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// projectSortColumns whitelists caller-selectable sort fields.
var projectSortColumns = map[string]string{
	"createdAt":            "created_at",
	"updatedAt":            "updated_at",
	"title":                "title",
	"viewCount":            "view_count",
	"likeCount":            "like_count",
	"completionPercentage": "completion_percentage",
	"startDate":            "start_date",
	"endDate":              "end_date",
}

func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{})

	if filter.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(technologies) LIKE ? OR LOWER(tags) LIKE ?",
			term, term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fixed tie-break: featured first, then priority, then the caller's sort
	// field, then id for a stable order.
	order := "featured DESC, priority DESC"
	if col, ok := projectSortColumns[filter.SortBy]; ok {
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

	if err := listQuery.Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *GormProjectRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormProjectRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// fetches cannot lose increments.
func (r *GormProjectRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *GormProjectRepository) IncrementLikes(id uint) (int64, error) {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var project models.Project
	if err := r.db.Select("like_count").First(&project, id).Error; err != nil {
		return 0, err
	}
	return project.LikeCount, nil
}

func (r *GormProjectRepository) BulkUpdate(ids []uint, updates map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Project{}).Where("id IN ?", ids).Updates(updates)
	return result.RowsAffected, result.Error
}
