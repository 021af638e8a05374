package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/salonbelle/booking-api/internal/domain/appointment"
	"github.com/salonbelle/booking-api/internal/dto"
	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
	"github.com/salonbelle/booking-api/internal/notify"
	usecase "github.com/salonbelle/booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	create       *usecase.CreateAppointment
	availability *usecase.GetAvailability
	dispatch     *notify.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	create *usecase.CreateAppointment,
	availability *usecase.GetAvailability,
	dispatch *notify.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		repo:         repo,
		create:       create,
		availability: availability,
		dispatch:     dispatch,
	}
}

type createAppointmentRequest struct {
	ClientName  string  `json:"client_name" binding:"required"`
	ClientPhone string  `json:"client_phone" binding:"required"`
	StylistID   string  `json:"stylist_id" binding:"required"`
	ServiceID   string  `json:"service_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// Create books a slot. Works with or without a session; an authenticated
// caller owns the booking, anyone else books as guest.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	clientID := ""
	if id := middleware.CurrentIdentity(c); id != nil {
		clientID = id.SubjectID
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		ClientID:    clientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		StylistID:   req.StylistID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		if code, ok := httperr.IsBusiness(err); ok {
			if code == domain.ErrSlotTaken {
				httperr.Conflict(c, code, "This time slot is already booked.")
				return
			}
			httperr.BadRequest(c, code, "Invalid appointment data.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// Availability returns free and taken slots for a stylist on a date.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	stylistID := c.Param("stylistId")
	date := c.Param("date")

	av, err := h.availability.Execute(c.Request.Context(), stylistID, date)
	if err != nil {
		if code, ok := httperr.IsBusiness(err); ok {
			httperr.BadRequest(c, code, "Invalid availability query.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_availability", "Failed to fetch availability.")
		return
	}

	httpresp.OK(c, av)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}
	h.respondEnriched(c, appointments)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	appointments, err := h.repo.ListByClient(c.Request.Context(), id.SubjectID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}
	h.respondEnriched(c, appointments)
}

// ListForStylist shows the agenda of the team member linked to the caller.
func (h *AppointmentHandler) ListForStylist(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	member, err := h.linkedMember(id.SubjectID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}
	if member == nil {
		httperr.NotFound(c, "stylist_profile_not_found", "No team member profile is linked to this account.")
		return
	}

	appointments, err := h.repo.ListByStylist(c.Request.Context(), member.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}
	h.respondEnriched(c, appointments)
}

type updateAppointmentRequest struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
}

// Update lets an admin, or the stylist the appointment belongs to, change
// status, slot or notes. Status changes fan out to the inbox.
func (h *AppointmentHandler) Update(c *gin.Context) {
	ap, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	previousStatus := ap.Status
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			httperr.BadRequest(c, "invalid_status", "Invalid appointment status.")
			return
		}
		ap.Status = *req.Status
	}
	if req.Date != nil {
		ap.Date = *req.Date
	}
	if req.Time != nil {
		ap.Time = *req.Time
	}
	if req.Notes != nil {
		ap.Notes = req.Notes
	}

	if err := h.repo.Update(c.Request.Context(), ap); err != nil {
		if code, ok := httperr.IsBusiness(err); ok && code == domain.ErrSlotTaken {
			httperr.Conflict(c, code, "This time slot is already booked.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	if ap.Status != previousStatus {
		h.dispatch.Dispatch(notify.Event{
			Type:        statusEventType(ap.Status),
			Appointment: ap,
		})
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ap, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), ap.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}
	httpresp.NoContent(c)
}

// loadOwned fetches the appointment and enforces ownership: admins touch
// anything, stylists only their own agenda.
func (h *AppointmentHandler) loadOwned(c *gin.Context) (*models.Appointment, bool) {
	profile := middleware.CurrentProfile(c)

	ap, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_fetch_appointment", "Failed to fetch appointment.")
		return nil, false
	}

	if profile.Role == models.RoleAdmin {
		return ap, true
	}

	member, err := h.linkedMember(profile.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_appointment", "Failed to fetch appointment.")
		return nil, false
	}
	if member == nil || member.ID != ap.StylistID {
		httperr.Forbidden(c, "not_appointment_owner", "This appointment belongs to another stylist.")
		return nil, false
	}

	return ap, true
}

func (h *AppointmentHandler) linkedMember(userID string) (*models.TeamMember, error) {
	var members []models.TeamMember
	if err := h.db.Where("user_id = ?", userID).Limit(1).Find(&members).Error; err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}
	return &members[0], nil
}

func statusEventType(status string) string {
	switch status {
	case models.StatusCancelled:
		return models.NotifAppointmentCancelled
	case models.StatusCompleted:
		return models.NotifAppointmentCompleted
	default:
		return models.NotifAppointmentUpdate
	}
}

// respondEnriched resolves service and stylist display names in two batch
// queries instead of per row.
func (h *AppointmentHandler) respondEnriched(c *gin.Context, appointments []models.Appointment) {
	serviceNames := make(map[string]string)
	stylistNames := make(map[string]string)

	if len(appointments) > 0 {
		serviceIDs := make([]string, 0, len(appointments))
		stylistIDs := make([]string, 0, len(appointments))
		for _, ap := range appointments {
			serviceIDs = append(serviceIDs, ap.ServiceID)
			stylistIDs = append(stylistIDs, ap.StylistID)
		}

		var services []models.Service
		if err := h.db.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
			httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
			return
		}
		for _, s := range services {
			serviceNames[s.ID] = s.Name
		}

		var members []models.TeamMember
		if err := h.db.Where("id IN ?", stylistIDs).Find(&members).Error; err != nil {
			httperr.Internal(c, "failed_to_fetch_appointments", "Failed to fetch appointments.")
			return
		}
		for _, m := range members {
			stylistNames[m.ID] = m.Name
		}
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			Location:    ap.Location,
			ClientName:  ap.ClientName,
			ServiceName: serviceNames[ap.ServiceID],
			StylistName: stylistNames[ap.StylistID],
			CreatedAt:   ap.CreatedAt,
		})
	}

	httpresp.List(c, out)
}
