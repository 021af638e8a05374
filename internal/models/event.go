package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a promotion. Its discount only affects displayed prices; nothing
// is persisted on the appointment.
type Event struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	StartDate       string  `gorm:"size:10;not null" json:"start_date"`
	EndDate         *string `gorm:"size:10" json:"end_date"`
	DiscountPercent *int    `json:"discount_percent"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
