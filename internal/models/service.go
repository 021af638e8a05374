package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a catalog entry. Prices are whole dollars; PriceMax is nil for
// fixed-price services. Archived (IsActive=false) instead of deleted so
// appointments keep a resolvable reference.
type Service struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	PriceMin    int    `gorm:"not null" json:"price_min"`
	PriceMax    *int   `json:"price_max"`
	DurationMin int    `gorm:"default:60" json:"duration_min"`
	Category    string `gorm:"size:50" json:"category"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	IsActive bool `gorm:"default:true" json:"is_active"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
