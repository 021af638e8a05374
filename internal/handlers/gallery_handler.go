package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/models"
)

type GalleryHandler struct {
	db *gorm.DB
}

func NewGalleryHandler(db *gorm.DB) *GalleryHandler {
	return &GalleryHandler{db: db}
}

func (h *GalleryHandler) List(c *gin.Context) {
	query := h.db.Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if stylistID := c.Query("stylist_id"); stylistID != "" {
		query = query.Where("stylist_id = ?", stylistID)
	}

	var images []models.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_gallery", "Failed to fetch gallery.")
		return
	}
	httpresp.List(c, images)
}

type galleryImageRequest struct {
	ImageURL    string  `json:"image_url" binding:"required"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	StylistID   *string `json:"stylist_id"`
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req galleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	image := models.GalleryImage{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StylistID:   req.StylistID,
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery_image", "Failed to create gallery image.")
		return
	}
	httpresp.Created(c, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.GalleryImage{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_gallery_image", "Failed to delete gallery image.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "gallery_image_not_found", "Gallery image not found.")
		return
	}
	httpresp.NoContent(c)
}
