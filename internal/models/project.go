package models

import (
	"time"
)

type ProjectCategory string

const (
	ProjectCategoryWeb     ProjectCategory = "web"
	ProjectCategoryMobile  ProjectCategory = "mobile"
	ProjectCategoryGame    ProjectCategory = "game"
	ProjectCategoryDesktop ProjectCategory = "desktop"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on-hold"
)

type Project struct {
	ID                   uint            `gorm:"primarykey" json:"id"`
	Title                string          `gorm:"type:varchar(200);not null" json:"title"`
	Slug                 string          `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Description          string          `gorm:"type:text" json:"description"`
	LongDescription      string          `gorm:"type:text" json:"longDescription,omitempty"`
	Category             ProjectCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Status               ProjectStatus   `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	Technologies         []string        `gorm:"serializer:json" json:"technologies"`
	Features             []string        `gorm:"serializer:json" json:"features,omitempty"`
	Challenges           []string        `gorm:"serializer:json" json:"challenges,omitempty"`
	Learnings            []string        `gorm:"serializer:json" json:"learnings,omitempty"`
	Tags                 []string        `gorm:"serializer:json" json:"tags,omitempty"`
	GithubURL            string          `gorm:"type:varchar(500)" json:"githubUrl,omitempty"`
	LiveURL              string          `gorm:"type:varchar(500)" json:"liveUrl,omitempty"`
	DemoURL              string          `gorm:"type:varchar(500)" json:"demoUrl,omitempty"`
	ImageURL             string          `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
	Images               []string        `gorm:"serializer:json" json:"images,omitempty"`
	ViewCount            int64           `gorm:"not null;default:0" json:"viewCount"`
	LikeCount            int64           `gorm:"not null;default:0" json:"likeCount"`
	IsPublic             bool            `gorm:"not null;default:true;index" json:"isPublic"`
	Featured             bool            `gorm:"not null;default:false" json:"featured"`
	Priority             int             `gorm:"not null;default:0" json:"priority"`
	CompletionPercentage int             `gorm:"not null;default:0" json:"completionPercentage"`
	Difficulty           int             `gorm:"not null;default:0" json:"difficulty,omitempty"`
	TeamSize             int             `gorm:"not null;default:1" json:"teamSize"`
	StartDate            *time.Time      `json:"startDate,omitempty"`
	EndDate              *time.Time      `json:"endDate,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// Valid reports whether the category is one of the declared values.
func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryWeb, ProjectCategoryMobile, ProjectCategoryGame, ProjectCategoryDesktop:
		return true
	}
	return false
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}
