package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient  = "client"
	RoleStylist = "stylist"
	RoleAdmin   = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleStylist, RoleAdmin:
		return true
	}
	return false
}

// UserProfile is the internal record behind an external identity.
// Created lazily on first auth sync, never deleted.
type UserProfile struct {
	ID     string `gorm:"size:36;primaryKey" json:"id"`
	UserID string `gorm:"size:128;uniqueIndex;not null" json:"user_id"`

	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Role  string `gorm:"size:20;not null;default:'client'" json:"role"`

	Phone        string `gorm:"size:30" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	Specialty    string `gorm:"size:100" json:"specialty"`
	Bio          string `gorm:"size:500" json:"bio"`
	ProfileImage string `gorm:"size:500" json:"profile_image"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
