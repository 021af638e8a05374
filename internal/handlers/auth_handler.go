package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
	"github.com/salonbelle/booking-api/internal/notify"
)

type AuthHandler struct {
	db       *gorm.DB
	dispatch *notify.Dispatcher
}

func NewAuthHandler(db *gorm.DB, dispatch *notify.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, dispatch: dispatch}
}

type sessionResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func splitName(fullName, email string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}
	if first == "" {
		if at := strings.Index(email, "@"); at > 0 {
			first = email[:at]
		}
	}
	return first, last
}

// Sync is called by the client right after the identity provider signs the
// user in. It creates the internal profile on first contact; the very first
// profile in the system becomes the admin.
func (h *AuthHandler) Sync(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	profile := middleware.CurrentProfile(c)

	if profile == nil {
		var adminCount int64
		if err := h.db.Model(&models.UserProfile{}).
			Where("role = ?", models.RoleAdmin).
			Count(&adminCount).Error; err != nil {
			httperr.Internal(c, "sync_failed", "Failed to sync user.")
			return
		}

		role := models.RoleClient
		if adminCount == 0 {
			role = models.RoleAdmin
		}

		created := models.UserProfile{
			UserID:   id.SubjectID,
			Name:     id.Name,
			Email:    id.Email,
			Role:     role,
			IsActive: true,
		}

		if err := h.db.Create(&created).Error; err != nil {
			httperr.Internal(c, "sync_failed", "Failed to sync user.")
			return
		}
		profile = &created

		h.dispatch.Dispatch(notify.Event{
			Type:    models.NotifNewUser,
			Profile: &created,
		})
	}

	first, last := splitName(id.Name, id.Email)
	httpresp.OK(c, sessionResponse{
		UserID:    id.SubjectID,
		Email:     id.Email,
		FirstName: first,
		LastName:  last,
		Role:      profile.Role,
		Phone:     profile.Phone,
		Address:   profile.Address,
	})
}

// CurrentUser returns the caller's identity plus profile; 404 when the
// profile was never synced.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	profile := middleware.CurrentProfile(c)

	if profile == nil {
		httperr.NotFound(c, "profile_not_found", "User profile not found.")
		return
	}

	first, last := splitName(id.Name, id.Email)
	httpresp.OK(c, sessionResponse{
		UserID:    id.SubjectID,
		Email:     id.Email,
		FirstName: first,
		LastName:  last,
		Role:      profile.Role,
		Phone:     profile.Phone,
		Address:   profile.Address,
	})
}
