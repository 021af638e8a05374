package appointment

import (
	"context"

	"github.com/salonbelle/booking-api/internal/models"
)

// Repository is the persistence surface the appointment use cases need.
type Repository interface {
	// Create inserts the appointment, re-validating inside a transaction
	// that no non-cancelled appointment already holds the same
	// stylist/date/time. A lost race surfaces as ErrSlotTaken.
	Create(ctx context.Context, ap *models.Appointment) error

	// ListBookedTimes returns the times of every appointment for the
	// stylist on the date, regardless of status. Cancelled bookings keep
	// their slot until staff reopens it by deleting them.
	ListBookedTimes(ctx context.Context, stylistID, date string) ([]string, error)

	Get(ctx context.Context, id string) (*models.Appointment, error)

	// Update saves the appointment, re-validating slot exclusivity the
	// same way Create does whenever the saved state occupies a slot
	// (non-cancelled). Conflicts surface as ErrSlotTaken.
	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, id string) error

	ListAll(ctx context.Context) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	ListByStylist(ctx context.Context, stylistID string) ([]models.Appointment, error)
}

// ErrSlotTaken is the business code for a lost booking race.
const ErrSlotTaken = "slot_taken"
