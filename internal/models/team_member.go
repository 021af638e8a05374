package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is a bookable stylist. UserID links it to a UserProfile when
// the stylist has a login; manually added members have no link.
// Archived (IsActive=false) instead of deleted so old appointments resolve.
type TeamMember struct {
	ID     string  `gorm:"size:36;primaryKey" json:"id"`
	UserID *string `gorm:"size:128;index" json:"user_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Specialty    string `gorm:"size:100" json:"specialty"`
	Bio          string `gorm:"size:500" json:"bio"`
	ProfileImage string `gorm:"size:500" json:"profile_image"`
	Phone        string `gorm:"size:30" json:"phone"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
