package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/cache"
	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
)

type NotificationHandler struct {
	db     *gorm.DB
	unread *cache.UnreadCache
}

func NewNotificationHandler(db *gorm.DB, unread *cache.UnreadCache) *NotificationHandler {
	return &NotificationHandler{db: db, unread: unread}
}

func (h *NotificationHandler) List(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var notifications []models.Notification
	if err := h.db.Where("user_id = ?", id.SubjectID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_notifications", "Failed to fetch notifications.")
		return
	}
	httpresp.List(c, notifications)
}

// UnreadCount serves the inbox badge. The web client polls this endpoint,
// so the count sits in redis for a minute between recomputes.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	ctx := c.Request.Context()

	if count, ok := h.unread.Get(ctx, id.SubjectID); ok {
		httpresp.OK(c, gin.H{"count": count})
		return
	}

	var count int64
	if err := h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", id.SubjectID, false).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_notifications", "Failed to fetch unread count.")
		return
	}

	h.unread.Set(ctx, id.SubjectID, count)
	httpresp.OK(c, gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	result := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), id.SubjectID).
		Update("is_read", true)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Failed to update notification.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	h.unread.Invalidate(c.Request.Context(), id.SubjectID)
	httpresp.NoContent(c)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	if err := h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", id.SubjectID, false).
		Update("is_read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notifications", "Failed to update notifications.")
		return
	}

	h.unread.Invalidate(c.Request.Context(), id.SubjectID)
	httpresp.NoContent(c)
}

// Delete only touches the caller's own rows; the id in the path is never
// enough on its own.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	result := h.db.Delete(&models.Notification{},
		"id = ? AND user_id = ?", c.Param("id"), id.SubjectID)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_notification", "Failed to delete notification.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	h.unread.Invalidate(c.Request.Context(), id.SubjectID)
	httpresp.NoContent(c)
}
