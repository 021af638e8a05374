package appointment

import (
	"context"
	"time"

	domain "github.com/salonbelle/booking-api/internal/domain/appointment"
	"github.com/salonbelle/booking-api/internal/domain/schedule"
	"github.com/salonbelle/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	stylistID string,
	date string,
) (*schedule.Availability, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	av := schedule.Compute(stylistID, date, booked)
	return &av, nil
}
