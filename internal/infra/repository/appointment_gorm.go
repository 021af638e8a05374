package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/salonbelle/booking-api/internal/domain/appointment"
	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Slot exclusivity
// --------------------------------------------------

// slotConflicts builds the query for non-cancelled appointments occupying
// the same stylist/date/time. A plain count, never FOR UPDATE: Postgres
// rejects locking clauses on aggregates, and races the count misses are
// caught by the partial unique index instead.
func slotConflicts(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.Model(&models.Appointment{}).
		Where(
			"stylist_id = ? AND date = ? AND time = ? AND status <> ?",
			ap.StylistID, ap.Date, ap.Time, models.StatusCancelled,
		)
}

// mapSlotRace turns a unique-index violation on uniq_appointments_slot into
// the slot_taken business error.
func mapSlotRace(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(domain.ErrSlotTaken)
	}
	return err
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := slotConflicts(tx, ap).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(domain.ErrSlotTaken)
		}

		return tx.Create(ap).Error
	})

	return mapSlotRace(err)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	stylistID string,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("stylist_id = ? AND date = ?", stylistID, date).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// Update re-checks slot exclusivity when the saved state occupies a slot:
// moving date/time or reviving a cancelled appointment must not land on a
// taken slot. Cancelling never conflicts.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ap.Status != models.StatusCancelled {
			var count int64
			if err := slotConflicts(tx, ap).
				Where("id <> ?", ap.ID).
				Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return httperr.ErrBusiness(domain.ErrSlotTaken)
			}
		}

		return tx.Save(ap).Error
	})

	return mapSlotRace(err)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByStylist(
	ctx context.Context,
	stylistID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}
