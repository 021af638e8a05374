package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotifNewAppointment       = "new_appointment"
	NotifAppointmentUpdate    = "appointment_update"
	NotifAppointmentCancelled = "appointment_cancelled"
	NotifAppointmentCompleted = "appointment_completed"
	NotifReceipt              = "receipt"
	NotifNewUser              = "new_user"
	NotifSystem               = "system"
)

// Notification is an in-app inbox entry. RelatedID points back at the entity
// that triggered it (usually an appointment).
type Notification struct {
	ID     string `gorm:"size:36;primaryKey" json:"id"`
	UserID string `gorm:"size:128;not null;index:idx_notifications_user_read" json:"user_id"`

	Type    string `gorm:"size:30;not null" json:"type"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`

	RelatedID *string `gorm:"size:36" json:"related_id"`
	IsRead    bool    `gorm:"default:false;index:idx_notifications_user_read" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
