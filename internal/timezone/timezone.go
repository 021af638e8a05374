package timezone

import "time"

// The salon operates in Bukavu (UTC+2).
const DefaultTimezone = "Africa/Lubumbashi"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the salon-local calendar date, same format as
// Appointment.Date and Event.StartDate.
func Today() string {
	return Now().Format("2006-01-02")
}
