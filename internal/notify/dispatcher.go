package notify

import (
	"context"
	"log"
	"time"

	"github.com/salonbelle/booking-api/internal/cache"
	"github.com/salonbelle/booking-api/internal/models"
)

type Event struct {
	Type        string
	Appointment *models.Appointment
	Profile     *models.UserProfile
}

// Dispatcher decouples fan-out from the request path: events go through a
// buffered channel to a single worker, and are dropped (with a log line)
// rather than ever blocking or failing the API.
type Dispatcher struct {
	notifier *Notifier
	unread   *cache.UnreadCache
	queue    chan Event
}

func NewDispatcher(notifier *Notifier, unread *cache.UnreadCache) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		unread:   unread,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		var notified []string
		switch {
		case ev.Type == models.NotifNewUser && ev.Profile != nil:
			notified = d.notifier.FanOutNewUser(ctx, ev.Profile)
		case ev.Appointment != nil:
			notified = d.notifier.FanOutAppointment(ctx, ev.Type, ev.Appointment)
		}

		for _, userID := range notified {
			d.unread.Invalidate(ctx, userID)
		}

		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
