package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.UserProfile
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_users", "Failed to fetch users.")
		return
	}
	httpresp.OK(c, users)
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole changes a user's role. Admins may never change their own role,
// so the system always keeps at least the acting admin in control.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	caller := middleware.CurrentProfile(c)
	userID := c.Param("userId")

	if caller != nil && caller.UserID == userID {
		httperr.Forbidden(c, "cannot_change_own_role", "You cannot change your own role.")
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Invalid role.")
		return
	}

	var profile models.UserProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_role", "Failed to update user role.")
		return
	}

	profile.Role = req.Role
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_role", "Failed to update user role.")
		return
	}

	// Stylists and admins are bookable; make sure a linked TeamMember
	// exists the moment the role allows bookings.
	if req.Role == models.RoleStylist || req.Role == models.RoleAdmin {
		h.ensureTeamMember(c, &profile)
	}

	httpresp.OK(c, profile)
}

func (h *UserHandler) ensureTeamMember(c *gin.Context, profile *models.UserProfile) {
	var count int64
	if err := h.db.Model(&models.TeamMember{}).
		Where("user_id = ?", profile.UserID).
		Count(&count).Error; err != nil || count > 0 {
		return
	}

	name := profile.Name
	if name == "" {
		name = profile.Email
	}

	userID := profile.UserID
	member := models.TeamMember{
		UserID:    &userID,
		Name:      name,
		Specialty: profile.Specialty,
		Phone:     profile.Phone,
		IsActive:  true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		c.Error(err)
	}
}
