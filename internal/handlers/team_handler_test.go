package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/models"
)

func teamRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	h := NewTeamHandler(db)

	r.GET("/api/team", h.List)
	r.GET("/api/team/:id", h.Get)

	admin := r.Group("/api",
		middleware.RequireAuth(testVerifier(), db),
		middleware.RequireAdmin())
	admin.POST("/team", h.Create)
	admin.PATCH("/team/:id", h.Update)
	admin.DELETE("/team/:id", h.Archive)
	return r
}

func TestTeamArchive_HiddenFromListButStillResolvable(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)

	member := models.TeamMember{Name: "Marie", Specialty: "Tresses", IsActive: true}
	require.NoError(t, db.Create(&member).Error)

	r := teamRouter(db)
	token := signToken(t, "boss", "Boss")

	w := doJSON(t, r, "DELETE", "/api/team/"+member.ID, token, "")
	assertStatus(t, w, http.StatusNoContent)

	// Gone from the public roster.
	w = doJSON(t, r, "GET", "/api/team", "", "")
	assertStatus(t, w, http.StatusOK)
	var list struct {
		Data  []models.TeamMember `json:"data"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)

	// Still resolvable by id for appointment history.
	w = doJSON(t, r, "GET", "/api/team/"+member.ID, "", "")
	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Marie")
}

func TestTeamArchive_UnknownMember(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := teamRouter(db)

	w := doJSON(t, r, "DELETE", "/api/team/ghost", signToken(t, "boss", "Boss"), "")

	assertStatus(t, w, http.StatusNotFound)
}

func TestTeamCreate_RequiresAdmin(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "marie", models.RoleStylist)
	r := teamRouter(db)

	w := doJSON(t, r, "POST", "/api/team",
		signToken(t, "marie", "Marie"), `{"name":"New"}`)

	assertStatus(t, w, http.StatusForbidden)
}

func TestTeamCreateAndUpdate(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := teamRouter(db)
	token := signToken(t, "boss", "Boss")

	w := doJSON(t, r, "POST", "/api/team", token,
		`{"name":"Grace Amani","specialty":"Maquillage"}`)
	assertStatus(t, w, http.StatusCreated)

	var created models.TeamMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	w = doJSON(t, r, "PATCH", "/api/team/"+created.ID, token,
		`{"name":"Grace Amani","specialty":"Maquillage, Soins"}`)
	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Soins")
}
