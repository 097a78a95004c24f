package dto

import (
	"time"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// AdminDTO represents the admin account in API responses. The password hash
// never leaves the models layer.
type AdminDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `json:"isActive"`
}

// ToAdminDTO converts an Admin model to AdminDTO
func ToAdminDTO(admin models.Admin) AdminDTO {
	return AdminDTO{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		LastLogin: admin.LastLogin,
		IsActive:  admin.IsActive,
	}
}
