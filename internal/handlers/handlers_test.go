package handlers

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/salonbelle/booking-api/internal/db"
	"github.com/salonbelle/booking-api/internal/identity"
	"github.com/salonbelle/booking-api/internal/models"
)

const testSecret = "test-secret-123"

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func testVerifier() identity.Verifier {
	return identity.NewJWTVerifier(testSecret)
}

func signToken(t *testing.T, sub, name string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"name":  name,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func seedProfile(t *testing.T, db *gorm.DB, userID, role string) *models.UserProfile {
	t.Helper()

	profile := models.UserProfile{UserID: userID, Name: userID, Role: role, IsActive: true}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, want, w.Body.String())
	}
}
