package appointment

import (
	"context"
	"time"

	domain "github.com/salonbelle/booking-api/internal/domain/appointment"
	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/models"
	"github.com/salonbelle/booking-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID    string
	ClientName  string
	ClientPhone string

	StylistID string
	ServiceID string

	Date string
	Time string

	Location string
	Address  *string
	Notes    *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	dispatch *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	dispatch *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		dispatch: dispatch,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if in.Location != models.LocationSalon && in.Location != models.LocationDomicile {
		return nil, httperr.ErrBusiness("invalid_location")
	}

	clientID := in.ClientID
	if clientID == "" {
		clientID = "guest"
	}

	ap := &models.Appointment{
		ClientID:    clientID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		StylistID:   in.StylistID,
		ServiceID:   in.ServiceID,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Address:     in.Address,
		Status:      models.StatusPending,
		Notes:       in.Notes,
	}

	// Create re-checks the slot transactionally; a lost race comes back
	// as slot_taken.
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatch.Dispatch(notify.Event{
		Type:        models.NotifNewAppointment,
		Appointment: ap,
	})

	return ap, nil
}
