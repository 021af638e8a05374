package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ImageURL    string  `gorm:"size:500;not null" json:"image_url"`
	Title       string  `gorm:"size:100" json:"title"`
	Description string  `gorm:"size:500" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	StylistID   *string `gorm:"size:36" json:"stylist_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
