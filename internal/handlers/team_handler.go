package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/httpresp"
	"github.com/salonbelle/booking-api/internal/models"
)

type TeamHandler struct {
	db *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

func (h *TeamHandler) List(c *gin.Context) {
	var members []models.TeamMember
	if err := h.db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&members).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_team", "Failed to fetch team members.")
		return
	}
	httpresp.List(c, members)
}

// Get resolves archived members too, so appointment history can always show
// who did the work.
func (h *TeamHandler) Get(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "team_member_not_found", "Team member not found.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_team_member", "Failed to fetch team member.")
		return
	}
	httpresp.OK(c, member)
}

type teamMemberRequest struct {
	Name         string  `json:"name" binding:"required"`
	Specialty    string  `json:"specialty"`
	Bio          string  `json:"bio"`
	ProfileImage string  `json:"profile_image"`
	Phone        string  `json:"phone"`
	UserID       *string `json:"user_id"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	member := models.TeamMember{
		UserID:       req.UserID,
		Name:         req.Name,
		Specialty:    req.Specialty,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Phone:        req.Phone,
		IsActive:     true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_team_member", "Failed to create team member.")
		return
	}
	httpresp.Created(c, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "team_member_not_found", "Team member not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_team_member", "Failed to update team member.")
		return
	}

	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	member.Name = req.Name
	member.Specialty = req.Specialty
	member.Bio = req.Bio
	member.ProfileImage = req.ProfileImage
	member.Phone = req.Phone
	if req.UserID != nil {
		member.UserID = req.UserID
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_team_member", "Failed to update team member.")
		return
	}
	httpresp.OK(c, member)
}

func (h *TeamHandler) Archive(c *gin.Context) {
	result := h.db.Model(&models.TeamMember{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_team_member", "Failed to delete team member.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "team_member_not_found", "Team member not found.")
		return
	}
	httpresp.NoContent(c)
}
