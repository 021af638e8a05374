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

func serviceRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	h := NewServiceHandler(db)

	r.GET("/api/services", h.List)
	r.GET("/api/services/:id", h.Get)

	admin := r.Group("/api",
		middleware.RequireAuth(testVerifier(), db),
		middleware.RequireAdmin())
	admin.POST("/services", h.Create)
	admin.PATCH("/services/:id", h.Update)
	admin.DELETE("/services/:id", h.Archive)
	return r
}

func TestServiceList_ExcludesArchived(t *testing.T) {
	db := testDB(t)
	rows := []models.Service{
		{Name: "Tresse", PriceMin: 2, DurationMin: 120, Category: "Coiffure", IsActive: true},
		{Name: "Ancien soin", PriceMin: 5, DurationMin: 30, Category: "Soins", IsActive: false},
	}
	require.NoError(t, db.Create(&rows).Error)

	r := serviceRouter(db)
	w := doJSON(t, r, "GET", "/api/services", "", "")

	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Tresse")
	assert.NotContains(t, w.Body.String(), "Ancien soin")
}

func TestServiceCreate_RejectsInvertedPriceRange(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := serviceRouter(db)

	w := doJSON(t, r, "POST", "/api/services", signToken(t, "boss", "Boss"),
		`{"name":"Tresse","price_min":40,"price_max":20}`)

	assertStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, w.Body.String(), "invalid_price_range")
}

func TestServiceCreate_DefaultsDuration(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)
	r := serviceRouter(db)

	w := doJSON(t, r, "POST", "/api/services", signToken(t, "boss", "Boss"),
		`{"name":"Manucure","price_min":5}`)

	assertStatus(t, w, http.StatusCreated)

	var created models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 60, created.DurationMin)
}

func TestServiceArchive_KeepsRowResolvable(t *testing.T) {
	db := testDB(t)
	seedProfile(t, db, "boss", models.RoleAdmin)

	service := models.Service{Name: "Locks", PriceMin: 5, DurationMin: 60, IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	r := serviceRouter(db)
	w := doJSON(t, r, "DELETE", "/api/services/"+service.ID, signToken(t, "boss", "Boss"), "")
	assertStatus(t, w, http.StatusNoContent)

	w = doJSON(t, r, "GET", "/api/services/"+service.ID, "", "")
	assertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"is_active":false`)
}
