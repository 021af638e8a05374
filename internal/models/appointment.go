package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	LocationSalon    = "salon"
	LocationDomicile = "domicile"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment occupies one fixed hourly slot for a stylist. Date and Time are
// stored as plain "2006-01-02" / "15:04" strings, matching the slot catalog.
// ClientID is the external auth subject, or "guest" for guest checkout.
type Appointment struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ClientID    string `gorm:"size:128;not null;index" json:"client_id"`
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:30;not null" json:"client_phone"`

	StylistID string `gorm:"size:36;not null;index:idx_appointments_stylist_date" json:"stylist_id"`
	ServiceID string `gorm:"size:36;not null" json:"service_id"`

	Date string `gorm:"size:10;not null;index:idx_appointments_stylist_date" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Location string  `gorm:"size:20;not null;default:'salon'" json:"location"`
	Address  *string `gorm:"size:255" json:"address"`

	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  *string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
