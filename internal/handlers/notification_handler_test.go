package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/cache"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
)

func notificationRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()

	unread, _ := cache.NewUnread("")
	h := NewNotificationHandler(db, unread)

	secured := r.Group("/api", middleware.RequireAuth(testVerifier(), db))
	secured.GET("/notifications", h.List)
	secured.GET("/notifications/unread-count", h.UnreadCount)
	secured.PATCH("/notifications/:id/read", h.MarkRead)
	secured.POST("/notifications/read-all", h.MarkAllRead)
	secured.DELETE("/notifications/:id", h.Delete)
	return r
}

func seedNotification(t *testing.T, db *gorm.DB, userID string, read bool) *models.Notification {
	t.Helper()

	n := models.Notification{
		UserID: userID, Type: models.NotifSystem,
		Title: "Titre", Message: "Message", IsRead: read,
	}
	require.NoError(t, db.Create(&n).Error)
	return &n
}

func TestNotifications_ListOnlyOwn(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-2", false)

	r := notificationRouter(db)
	w := doJSON(t, r, "GET", "/api/notifications", signToken(t, "user-1", "Awa"), "")

	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestNotifications_UnreadCount(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", true)

	r := notificationRouter(db)
	w := doJSON(t, r, "GET", "/api/notifications/unread-count", signToken(t, "user-1", "Awa"), "")

	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestNotifications_MarkRead(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	n := seedNotification(t, db, "user-1", false)

	r := notificationRouter(db)
	w := doJSON(t, r, "PATCH", "/api/notifications/"+n.ID+"/read", signToken(t, "user-1", "Awa"), "")

	assertStatus(t, w, http.StatusNoContent)

	var updated models.Notification
	require.NoError(t, db.First(&updated, "id = ?", n.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestNotifications_MarkReadRejectsForeignRows(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	n := seedNotification(t, db, "user-2", false)

	r := notificationRouter(db)
	w := doJSON(t, r, "PATCH", "/api/notifications/"+n.ID+"/read", signToken(t, "user-1", "Awa"), "")

	assertStatus(t, w, http.StatusNotFound)
}

func TestNotifications_MarkAllRead(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", false)

	r := notificationRouter(db)
	w := doJSON(t, r, "POST", "/api/notifications/read-all", signToken(t, "user-1", "Awa"), "")

	assertStatus(t, w, http.StatusNoContent)

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", "user-1", false).Count(&unread)
	assert.EqualValues(t, 0, unread)
}

func TestNotifications_DeleteOwnerOnly(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	foreign := seedNotification(t, db, "user-2", false)
	own := seedNotification(t, db, "user-1", false)

	r := notificationRouter(db)
	token := signToken(t, "user-1", "Awa")

	w := doJSON(t, r, "DELETE", "/api/notifications/"+foreign.ID, token, "")
	assertStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, "DELETE", "/api/notifications/"+own.ID, token, "")
	assertStatus(t, w, http.StatusNoContent)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
