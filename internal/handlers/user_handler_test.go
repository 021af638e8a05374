package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
)

func userRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	h := NewUserHandler(db)

	admin := r.Group("/api",
		middleware.RequireAuth(testVerifier(), db),
		middleware.RequireAdmin())
	admin.GET("/users", h.List)
	admin.PATCH("/users/:userId/role", h.UpdateRole)
	return r
}

func TestUpdateRole_SelfChangeForbidden(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := userRouter(db)

	w := doJSON(t, r, "PATCH", "/api/users/boss/role",
		signToken(t, "boss", "Boss"), `{"role":"client"}`)

	assertStatus(t, w, http.StatusForbidden)
	assert.Contains(t, w.Body.String(), "cannot_change_own_role")

	// The role is untouched.
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", "boss").First(&profile).Error)
	assert.Equal(t, models.RoleAdmin, profile.Role)
}

func TestUpdateRole_InvalidRole(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	seedProfile(t, db, "user-1", models.RoleClient)
	r := userRouter(db)

	w := doJSON(t, r, "PATCH", "/api/users/user-1/role",
		signToken(t, "boss", "Boss"), `{"role":"superuser"}`)

	assertStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, w.Body.String(), "invalid_role")
}

func TestUpdateRole_UnknownUser(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := userRouter(db)

	w := doJSON(t, r, "PATCH", "/api/users/ghost/role",
		signToken(t, "boss", "Boss"), `{"role":"stylist"}`)

	assertStatus(t, w, http.StatusNotFound)
}

func TestUpdateRole_PromotionToStylistCreatesTeamMember(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	seedProfile(t, db, "marie", models.RoleClient)
	r := userRouter(db)

	w := doJSON(t, r, "PATCH", "/api/users/marie/role",
		signToken(t, "boss", "Boss"), `{"role":"stylist"}`)

	assertStatus(t, w, http.StatusOK)

	var member models.TeamMember
	require.NoError(t, db.Where("user_id = ?", "marie").First(&member).Error)
	assert.True(t, member.IsActive)
	assert.Equal(t, "marie", member.Name)
}

func TestUpdateRole_PromotionDoesNotDuplicateTeamMember(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	seedProfile(t, db, "marie", models.RoleStylist)

	userID := "marie"
	require.NoError(t, db.Create(&models.TeamMember{
		UserID: &userID, Name: "Marie", IsActive: true,
	}).Error)

	r := userRouter(db)
	w := doJSON(t, r, "PATCH", "/api/users/marie/role",
		signToken(t, "boss", "Boss"), `{"role":"admin"}`)

	assertStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&models.TeamMember{}).Where("user_id = ?", "marie").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "user-1", models.RoleClient)
	r := userRouter(db)

	w := doJSON(t, r, "GET", "/api/users", signToken(t, "user-1", "User"), "")

	assertStatus(t, w, http.StatusForbidden)
}
