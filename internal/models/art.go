package models

import (
	"time"
)

type ArtCategory string

const (
	ArtCategoryDigital     ArtCategory = "digital"
	ArtCategoryTraditional ArtCategory = "traditional"
	ArtCategorySketch      ArtCategory = "sketch"
	ArtCategoryPainting    ArtCategory = "painting"
	ArtCategory3D          ArtCategory = "3d"
	ArtCategoryPixel       ArtCategory = "pixel"
	ArtCategoryOther       ArtCategory = "other"
)

type Art struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	Title        string      `gorm:"type:varchar(200);not null" json:"title"`
	Slug         string      `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Description  string      `gorm:"type:text" json:"description,omitempty"`
	Category     ArtCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Medium       string      `gorm:"type:varchar(100)" json:"medium,omitempty"`
	Year         int         `gorm:"index" json:"year,omitempty"`
	ImageURL     string      `gorm:"type:varchar(500)" json:"imageUrl"`
	ThumbnailURL string      `gorm:"type:varchar(500)" json:"thumbnailUrl,omitempty"`
	Tags         []string    `gorm:"serializer:json" json:"tags,omitempty"`
	ViewCount    int64       `gorm:"not null;default:0" json:"viewCount"`
	LikeCount    int64       `gorm:"not null;default:0" json:"likeCount"`
	Featured     bool        `gorm:"not null;default:false" json:"featured"`
	Priority     int         `gorm:"not null;default:0" json:"priority"`
	IsPublic     bool        `gorm:"not null;default:true;index" json:"isPublic"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (c ArtCategory) Valid() bool {
	switch c {
	case ArtCategoryDigital, ArtCategoryTraditional, ArtCategorySketch,
		ArtCategoryPainting, ArtCategory3D, ArtCategoryPixel, ArtCategoryOther:
		return true
	}
	return false
}
