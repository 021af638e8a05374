package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// List returns active services only; archived ones stay reachable by id for
// old appointments but never show up in the catalog.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Where("is_active = ?", true).
		Order("category ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_services", "Failed to fetch services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_service", "Failed to fetch service.")
		return
	}
	httpresp.OK(c, service)
}

type serviceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceMin    int    `json:"price_min" binding:"required,gt=0"`
	PriceMax    *int   `json:"price_max"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (r *serviceRequest) validate() string {
	if r.PriceMax != nil && *r.PriceMax < r.PriceMin {
		return "price_max must be greater than price_min"
	}
	return ""
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, "invalid_price_range", msg)
		return
	}

	duration := req.DurationMin
	if duration <= 0 {
		duration = 60
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		DurationMin: duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, "invalid_price_range", msg)
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.PriceMin = req.PriceMin
	service.PriceMax = req.PriceMax
	if req.DurationMin > 0 {
		service.DurationMin = req.DurationMin
	}
	service.Category = req.Category
	service.ImageURL = req.ImageURL

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}
	httpresp.OK(c, service)
}

// Archive soft-deletes: the service disappears from the catalog but existing
// appointments keep a valid reference.
func (h *ServiceHandler) Archive(c *gin.Context) {
	result := h.db.Model(&models.Service{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.NoContent(c)
}
