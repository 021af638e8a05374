package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/domain/booking"
	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/models"
	"github.com/salonbelle/booking-api/internal/timezone"
)

type EventHandler struct {
	db *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{db: db}
}

func (h *EventHandler) List(c *gin.Context) {
	var events []models.Event
	if err := h.db.Order("start_date DESC").Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_events", "Failed to fetch events.")
		return
	}
	httpresp.List(c, events)
}

// ListActive filters to promotions running today, salon time.
func (h *EventHandler) ListActive(c *gin.Context) {
	var events []models.Event
	if err := h.db.Where("is_active = ?", true).
		Order("start_date DESC").
		Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_events", "Failed to fetch events.")
		return
	}

	today := timezone.Today()
	active := make([]models.Event, 0, len(events))
	for i := range events {
		if booking.EventActiveOn(&events[i], today) {
			active = append(active, events[i])
		}
	}
	httpresp.List(c, active)
}

type eventRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         *string `json:"end_date"`
	DiscountPercent *int    `json:"discount_percent"`
	IsActive        *bool   `json:"is_active"`
}

func (r *eventRequest) validate() string {
	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		return "start_date must be YYYY-MM-DD"
	}
	if r.EndDate != nil {
		if _, err := time.Parse("2006-01-02", *r.EndDate); err != nil {
			return "end_date must be YYYY-MM-DD"
		}
		if *r.EndDate < r.StartDate {
			return "end_date must not be before start_date"
		}
	}
	if r.DiscountPercent != nil && (*r.DiscountPercent < 0 || *r.DiscountPercent > 100) {
		return "discount_percent must be between 0 and 100"
	}
	return ""
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, "invalid_event", msg)
		return
	}

	event := models.Event{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.db.Create(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event", "Failed to create event.")
		return
	}
	httpresp.Created(c, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	var event models.Event
	if err := h.db.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "event_not_found", "Event not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_event", "Failed to update event.")
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, "invalid_event", msg)
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.ImageURL = req.ImageURL
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.DiscountPercent = req.DiscountPercent
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.db.Save(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Failed to update event.")
		return
	}
	httpresp.OK(c, event)
}

// Delete is a hard delete. Promotions are display-only, nothing references
// them once they are gone.
func (h *EventHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.Event{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_event", "Failed to delete event.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}
	httpresp.NoContent(c)
}
