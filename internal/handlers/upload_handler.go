package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/imaging"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
	"github.com/salonbelle/booking-api/internal/storage"
)

const maxUploadBytes = 8 << 20

type UploadHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewUploadHandler(db *gorm.DB, store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{db: db, store: store}
}

// ProfilePhoto converts the uploaded image to webp, pushes it to the object
// store and saves the URL on the caller's profile.
func (h *UploadHandler) ProfilePhoto(c *gin.Context) {
	if h.store == nil {
		httperr.Internal(c, "uploads_disabled", "Photo uploads are not configured.")
		return
	}

	id := middleware.CurrentIdentity(c)
	profile := middleware.CurrentProfile(c)
	if profile == nil {
		httperr.NotFound(c, "profile_not_found", "User profile not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A photo file is required.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Photo must be under 8MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read photo.")
		return
	}
	defer src.Close()

	data, err := imaging.ToWebP(src)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "Photo must be a valid image.")
		return
	}

	key := "profiles/" + uuid.NewString() + ".webp"
	url, err := h.store.Upload(c.Request.Context(), key, "image/webp", data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store photo.")
		return
	}

	if err := h.db.Model(&models.UserProfile{}).
		Where("user_id = ?", id.SubjectID).
		Update("profile_image", url).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Failed to save photo URL.")
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}
