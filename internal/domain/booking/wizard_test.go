package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonbelle/booking-api/internal/httperr"
)

func completedWizard() *Wizard {
	return &Wizard{
		Step:       StepConfirm,
		ServiceID:  "svc-1",
		Location:   LocationSalon,
		StylistID:  "sty-1",
		Date:       "2026-03-10",
		Time:       "09:00",
		Phone:      "+243 999",
		ClientName: "Awa",
	}
}

func TestNewWizard_StartsAtServiceInSalon(t *testing.T) {
	w := NewWizard()

	assert.Equal(t, StepService, w.Step)
	assert.Equal(t, LocationSalon, w.Location)
	assert.False(t, w.CanProceed())
}

func TestCanProceed_PerStep(t *testing.T) {
	cases := []struct {
		name string
		w    Wizard
		want bool
	}{
		{"service without selection", Wizard{Step: StepService}, false},
		{"service with selection", Wizard{Step: StepService, ServiceID: "svc"}, true},
		{"salon location needs nothing", Wizard{Step: StepLocation, Location: LocationSalon}, true},
		{"domicile without address", Wizard{Step: StepLocation, Location: LocationDomicile, Phone: "+243"}, false},
		{"domicile without phone", Wizard{Step: StepLocation, Location: LocationDomicile, Address: "12 av."}, false},
		{"domicile complete", Wizard{Step: StepLocation, Location: LocationDomicile, Address: "12 av.", Phone: "+243"}, true},
		{"stylist missing", Wizard{Step: StepStylist}, false},
		{"stylist chosen", Wizard{Step: StepStylist, StylistID: "sty"}, true},
		{"datetime date only", Wizard{Step: StepDatetime, Date: "2026-03-10"}, false},
		{"datetime complete", Wizard{Step: StepDatetime, Date: "2026-03-10", Time: "09:00"}, true},
		{"confirm without name", Wizard{Step: StepConfirm}, false},
		{"confirm with name", Wizard{Step: StepConfirm, ClientName: "Awa"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.w.CanProceed())
		})
	}
}

func TestNext_WalksLinearFlow(t *testing.T) {
	w := NewWizard()
	w.ServiceID = "svc"

	assert.NoError(t, w.Next())
	assert.Equal(t, StepLocation, w.Step)

	assert.NoError(t, w.Next())
	assert.Equal(t, StepStylist, w.Step)

	w.StylistID = "sty"
	assert.NoError(t, w.Next())
	assert.Equal(t, StepDatetime, w.Step)

	w.Date = "2026-03-10"
	w.Time = "09:00"
	assert.NoError(t, w.Next())
	assert.Equal(t, StepConfirm, w.Step)
}

func TestNext_BlockedOnIncompleteStep(t *testing.T) {
	w := NewWizard()

	err := w.Next()

	code, ok := httperr.IsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "incomplete_step", code)
	assert.Equal(t, StepService, w.Step)
}

func TestNext_RefusesPastConfirm(t *testing.T) {
	w := completedWizard()

	err := w.Next()

	code, ok := httperr.IsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "already_at_confirm", code)
}

func TestPrev_StopsAtFirstStep(t *testing.T) {
	w := NewWizard()
	w.Prev()
	assert.Equal(t, StepService, w.Step)

	w.Step = StepStylist
	w.Prev()
	assert.Equal(t, StepLocation, w.Step)
}

func TestSelectDate_ClearsChosenTime(t *testing.T) {
	w := completedWizard()
	w.Step = StepDatetime

	w.SelectDate("2026-03-11")

	assert.Equal(t, "2026-03-11", w.Date)
	assert.Empty(t, w.Time)
	assert.False(t, w.CanProceed())
}

func TestSubmit_OnlyFromCompletedConfirm(t *testing.T) {
	w := completedWizard()
	w.Step = StepDatetime

	_, err := w.Submit("user-1")
	code, _ := httperr.IsBusiness(err)
	assert.Equal(t, "not_at_confirm", code)

	w = completedWizard()
	w.ClientName = ""
	_, err = w.Submit("user-1")
	code, _ = httperr.IsBusiness(err)
	assert.Equal(t, "incomplete_step", code)
}

func TestSubmit_AuthenticatedCallerOwnsBooking(t *testing.T) {
	w := completedWizard()

	p, err := w.Submit("user-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", p.ClientID)
	assert.Equal(t, "Awa", p.ClientName)
	assert.Nil(t, p.Address)
}

func TestSubmit_GuestCheckout(t *testing.T) {
	w := completedWizard()

	p, err := w.Submit("")

	assert.NoError(t, err)
	assert.Equal(t, GuestClientID, p.ClientID)
}

func TestSubmit_DomicileCarriesAddress(t *testing.T) {
	w := completedWizard()
	w.Location = LocationDomicile
	w.Address = "12 av. Patrice Lumumba"
	w.Notes = "Sonner deux fois"

	p, err := w.Submit("user-1")

	assert.NoError(t, err)
	if assert.NotNil(t, p.Address) {
		assert.Equal(t, "12 av. Patrice Lumumba", *p.Address)
	}
	if assert.NotNil(t, p.Notes) {
		assert.Equal(t, "Sonner deux fois", *p.Notes)
	}
}
