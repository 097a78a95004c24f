package repository

import (
	"time"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// Create creates an admin record
	Create(admin *models.Admin) error

	// FindByID finds an admin by ID
	FindByID(id uint) (*models.Admin, error)

	// FindByUsername finds an admin by username
	FindByUsername(username string) (*models.Admin, error)

	// FindByEmail finds an admin by email
	FindByEmail(email string) (*models.Admin, error)

	// Update updates an admin record
	Update(admin *models.Admin) error

	// StoreReset persists a password reset code hash
	StoreReset(reset *models.PasswordReset) error

	// FindActiveReset finds the newest unconsumed, unexpired reset for an email
	FindActiveReset(email string, now time.Time) (*models.PasswordReset, error)

	// ConsumeReset marks a reset as used
	ConsumeReset(reset *models.PasswordReset, now time.Time) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	Category   *models.ProjectCategory
	Status     *models.ProjectStatus
	Featured   *bool
	Search     string
	PublicOnly bool
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint) (*models.Project, error)
	FindBySlug(slug string, publicOnly bool) (*models.Project, error)
	List(filter ProjectFilter) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uint) error

	// SlugExists reports whether another project already uses the slug
	SlugExists(slug string, excludeID uint) (bool, error)

	// IncrementViews bumps the view counter without loading the row
	IncrementViews(id uint) error

	// IncrementLikes bumps the like counter and returns the new count
	IncrementLikes(id uint) (int64, error)

	// BulkUpdate applies one update payload to a set of ids in one statement,
	// returning the number of rows touched
	BulkUpdate(ids []uint, updates map[string]interface{}) (int64, error)
}

// ArtFilter holds filtering options for listing art pieces
type ArtFilter struct {
	Category   *models.ArtCategory
	Featured   *bool
	Year       *int
	Search     string
	PublicOnly bool
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// ArtRepository defines the interface for art data access
type ArtRepository interface {
	Create(art *models.Art) error
	FindByID(id uint) (*models.Art, error)
	FindBySlug(slug string, publicOnly bool) (*models.Art, error)
	List(filter ArtFilter) ([]models.Art, int64, error)
	Update(art *models.Art) error
	Delete(id uint) error
	SlugExists(slug string, excludeID uint) (bool, error)
	IncrementViews(id uint) error
	IncrementLikes(id uint) (int64, error)
}

// EducationRepository defines the interface for education entries
type EducationRepository interface {
	Create(entry *models.Education) error
	FindByID(id uint) (*models.Education, error)
	List(activeOnly bool) ([]models.Education, error)
	Update(entry *models.Education) error
	Delete(id uint) error

	// Reorder rewrites each row's order field to its index in ids, inside a
	// single transaction
	Reorder(ids []uint) error
}

// ExperienceRepository defines the interface for experience entries
type ExperienceRepository interface {
	Create(entry *models.Experience) error
	FindByID(id uint) (*models.Experience, error)
	List(activeOnly bool) ([]models.Experience, error)
	Update(entry *models.Experience) error
	Delete(id uint) error
	Reorder(ids []uint) error
}

// TechStackRepository defines the interface for tech stack entries
type TechStackRepository interface {
	Create(entry *models.TechStack) error
	FindByID(id uint) (*models.TechStack, error)
	List(activeOnly bool, category *models.TechCategory) ([]models.TechStack, error)
	Update(entry *models.TechStack) error
	Delete(id uint) error
	Reorder(ids []uint) error
}

// SettingRepository defines the interface for settings data access
type SettingRepository interface {
	Create(setting *models.Setting) error
	FindByKey(key string) (*models.Setting, error)
	List(category *models.SettingCategory, publicOnly bool) ([]models.Setting, error)
	Update(setting *models.Setting) error
	Delete(key string) error
}

// ContactFilter holds filtering options for listing contact submissions
type ContactFilter struct {
	Status *models.ContactStatus
	Limit  int
	Offset int
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id uint) (*models.Contact, error)
	List(filter ContactFilter) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	Delete(id uint) error
}
