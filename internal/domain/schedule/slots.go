// Package schedule computes slot availability against the salon's fixed
// daily grid. Every booking occupies exactly one hourly slot; service
// duration does not stretch across slots.
package schedule

// The salon's bookable hours, 07:00 through 21:00.
var slotCatalog = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	"19:00", "20:00", "21:00",
}

func Slots() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

type Availability struct {
	Date           string   `json:"date"`
	StylistID      string   `json:"stylist_id"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// Compute subtracts the booked times from the slot catalog. AvailableSlots
// keeps catalog (chronological) order; BookedSlots keeps the order booked
// times were handed in, deduplicated. Times outside the catalog never make a
// slot available, they just show up as booked.
func Compute(stylistID, date string, booked []string) Availability {
	taken := make(map[string]struct{}, len(booked))
	bookedSlots := make([]string, 0, len(booked))
	for _, t := range booked {
		if _, seen := taken[t]; seen {
			continue
		}
		taken[t] = struct{}{}
		bookedSlots = append(bookedSlots, t)
	}

	available := make([]string, 0, len(slotCatalog))
	for _, slot := range slotCatalog {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return Availability{
		Date:           date,
		StylistID:      stylistID,
		AvailableSlots: available,
		BookedSlots:    bookedSlots,
	}
}
