// Package notify writes in-app notifications for the parties interested in
// an appointment: the assigned stylist (when they have a login) and every
// admin. Fan-out is best effort and never fails the request that caused it.
package notify

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/models"
)

type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// recipients resolves the stylist's linked user (if any) followed by every
// admin. One notification per entry, even if the stylist is also an admin.
func (n *Notifier) recipients(ctx context.Context, stylistID string) []string {
	var userIDs []string

	if stylistID != "" {
		var member models.TeamMember
		err := n.db.WithContext(ctx).
			Where("id = ?", stylistID).
			First(&member).Error
		if err == nil && member.UserID != nil && *member.UserID != "" {
			userIDs = append(userIDs, *member.UserID)
		}
	}

	var admins []models.UserProfile
	if err := n.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Find(&admins).Error; err != nil {
		log.Println("notify: listing admins:", err)
		return userIDs
	}

	for _, admin := range admins {
		userIDs = append(userIDs, admin.UserID)
	}

	return userIDs
}

func (n *Notifier) insert(ctx context.Context, userID, notifType, title, message string, relatedID *string) error {
	notif := models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}
	return n.db.WithContext(ctx).Create(&notif).Error
}

// FanOutAppointment writes one notification per interested party. Returns
// the user ids actually notified so the dispatcher can invalidate caches.
func (n *Notifier) FanOutAppointment(ctx context.Context, notifType string, ap *models.Appointment) []string {
	title, message := appointmentText(notifType, ap)

	var notified []string
	for _, userID := range n.recipients(ctx, ap.StylistID) {
		relatedID := ap.ID
		if err := n.insert(ctx, userID, notifType, title, message, &relatedID); err != nil {
			log.Println("notify: insert failed:", err)
			continue
		}
		notified = append(notified, userID)
	}
	return notified
}

// FanOutNewUser tells every admin a profile was just created.
func (n *Notifier) FanOutNewUser(ctx context.Context, profile *models.UserProfile) []string {
	name := profile.Name
	if name == "" {
		name = profile.Email
	}

	var notified []string
	for _, userID := range n.recipients(ctx, "") {
		if userID == profile.UserID {
			continue
		}
		relatedID := profile.ID
		err := n.insert(ctx, userID, models.NotifNewUser,
			"Nouvel utilisateur",
			fmt.Sprintf("%s vient de créer un compte.", name),
			&relatedID,
		)
		if err != nil {
			log.Println("notify: insert failed:", err)
			continue
		}
		notified = append(notified, userID)
	}
	return notified
}

func appointmentText(notifType string, ap *models.Appointment) (title, message string) {
	switch notifType {
	case models.NotifNewAppointment:
		return "Nouveau rendez-vous",
			fmt.Sprintf("%s a réservé le %s à %s.", ap.ClientName, ap.Date, ap.Time)
	case models.NotifAppointmentCancelled:
		return "Rendez-vous annulé",
			fmt.Sprintf("Le rendez-vous de %s du %s à %s a été annulé.", ap.ClientName, ap.Date, ap.Time)
	case models.NotifAppointmentCompleted:
		return "Rendez-vous terminé",
			fmt.Sprintf("Le rendez-vous de %s du %s à %s est terminé.", ap.ClientName, ap.Date, ap.Time)
	default:
		return "Rendez-vous mis à jour",
			fmt.Sprintf("Le rendez-vous de %s du %s à %s a été modifié.", ap.ClientName, ap.Date, ap.Time)
	}
}
