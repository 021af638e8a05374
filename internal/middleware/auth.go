package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/httperr"
	"github.com/salonbelle/booking-api/internal/identity"
	"github.com/salonbelle/booking-api/internal/models"
)

const (
	ContextIdentity = "identity"
	ContextProfile  = "userProfile"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func attachProfile(c *gin.Context, db *gorm.DB, subjectID string) {
	var profile models.UserProfile
	err := db.Where("user_id = ?", subjectID).First(&profile).Error
	if err != nil {
		// No profile yet: the caller is effectively unprivileged. Routes
		// that need one handle its absence.
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(err)
		}
		return
	}
	c.Set(ContextProfile, &profile)
}

// RequireAuth verifies the bearer token, then attaches the identity and, when
// one exists, the matching UserProfile.
func RequireAuth(verifier identity.Verifier, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(ContextIdentity, id)
		attachProfile(c, db, id.SubjectID)
		c.Next()
	}
}

// OptionalAuth attaches identity and profile when a valid token is present
// and silently proceeds otherwise. Used by the public booking endpoint, which
// accepts both guest and signed-in submissions.
func OptionalAuth(verifier identity.Verifier, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		if id, err := verifier.Verify(c.Request.Context(), token); err == nil {
			c.Set(ContextIdentity, id)
			attachProfile(c, db, id.SubjectID)
		}

		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) *identity.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		return v.(*identity.Identity)
	}
	return nil
}

func CurrentProfile(c *gin.Context) *models.UserProfile {
	if v, ok := c.Get(ContextProfile); ok {
		return v.(*models.UserProfile)
	}
	return nil
}
