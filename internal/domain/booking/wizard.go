// Package booking holds the multi-step reservation flow and its pricing
// rules. The wizard is a plain state machine so both the web client and the
// API tests exercise the same transition logic.
package booking

import "github.com/salonbelle/booking-api/internal/httperr"

type Step string

const (
	StepService  Step = "service"
	StepLocation Step = "location"
	StepStylist  Step = "stylist"
	StepDatetime Step = "datetime"
	StepConfirm  Step = "confirm"
)

// Linear flow, no jumps.
var steps = []Step{StepService, StepLocation, StepStylist, StepDatetime, StepConfirm}

const (
	LocationSalon    = "salon"
	LocationDomicile = "domicile"
)

// GuestClientID is used when an unauthenticated visitor completes the flow.
const GuestClientID = "guest"

type Wizard struct {
	Step Step

	ServiceID string
	Location  string
	Address   string
	Phone     string
	StylistID string
	Date      string
	Time      string

	ClientName string
	Notes      string
}

func NewWizard() *Wizard {
	return &Wizard{
		Step:     StepService,
		Location: LocationSalon,
	}
}

func (w *Wizard) stepIndex() int {
	for i, s := range steps {
		if s == w.Step {
			return i
		}
	}
	return 0
}

// CanProceed reports whether the current step has everything it needs.
func (w *Wizard) CanProceed() bool {
	switch w.Step {
	case StepService:
		return w.ServiceID != ""
	case StepLocation:
		if w.Location == LocationDomicile {
			return w.Address != "" && w.Phone != ""
		}
		return true
	case StepStylist:
		return w.StylistID != ""
	case StepDatetime:
		return w.Date != "" && w.Time != ""
	case StepConfirm:
		return w.ClientName != ""
	}
	return false
}

func (w *Wizard) Next() error {
	if !w.CanProceed() {
		return httperr.ErrBusiness("incomplete_step")
	}

	idx := w.stepIndex()
	if idx >= len(steps)-1 {
		return httperr.ErrBusiness("already_at_confirm")
	}

	w.Step = steps[idx+1]
	return nil
}

func (w *Wizard) Prev() {
	if idx := w.stepIndex(); idx > 0 {
		w.Step = steps[idx-1]
	}
}

// SelectDate resets the chosen time so a slot picked for another day is never
// carried over to a date where it may already be taken.
func (w *Wizard) SelectDate(date string) {
	w.Date = date
	w.Time = ""
}

// Payload is the appointment submission built from the finished wizard.
type Payload struct {
	ClientID    string
	ClientName  string
	ClientPhone string
	StylistID   string
	ServiceID   string
	Date        string
	Time        string
	Location    string
	Address     *string
	Notes       *string
}

// Submit builds the appointment payload. It only works from a completed
// confirm step. subjectID is the authenticated identity, or empty for guest
// checkout.
func (w *Wizard) Submit(subjectID string) (*Payload, error) {
	if w.Step != StepConfirm {
		return nil, httperr.ErrBusiness("not_at_confirm")
	}
	if !w.CanProceed() {
		return nil, httperr.ErrBusiness("incomplete_step")
	}

	clientID := subjectID
	if clientID == "" {
		clientID = GuestClientID
	}

	p := &Payload{
		ClientID:    clientID,
		ClientName:  w.ClientName,
		ClientPhone: w.Phone,
		StylistID:   w.StylistID,
		ServiceID:   w.ServiceID,
		Date:        w.Date,
		Time:        w.Time,
		Location:    w.Location,
	}

	if w.Location == LocationDomicile && w.Address != "" {
		addr := w.Address
		p.Address = &addr
	}
	if w.Notes != "" {
		notes := w.Notes
		p.Notes = &notes
	}

	return p, nil
}
