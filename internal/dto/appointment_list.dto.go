package dto

import "time"

// AppointmentListDTO enriches a raw appointment row with the service and
// stylist display names for dashboard lists.
type AppointmentListDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StylistName string    `json:"stylist_name"`
	CreatedAt   time.Time `json:"created_at"`
}
