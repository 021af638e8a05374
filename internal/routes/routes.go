package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbelle/booking-api/internal/cache"
	"github.com/salonbelle/booking-api/internal/config"
	"github.com/salonbelle/booking-api/internal/handlers"
	"github.com/salonbelle/booking-api/internal/identity"
	infraRepo "github.com/salonbelle/booking-api/internal/infra/repository"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/notify"
	"github.com/salonbelle/booking-api/internal/storage"
	ucAppointment "github.com/salonbelle/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	unread *cache.UnreadCache,
	store storage.ObjectStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	verifier := identity.NewJWTVerifier(cfg.JWTSecret)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifier := notify.New(db)
	dispatcher := notify.NewDispatcher(notifier, unread)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		dispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, dispatcher)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	teamHandler := handlers.NewTeamHandler(db)
	eventHandler := handlers.NewEventHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db, unread)
	uploadHandler := handlers.NewUploadHandler(db, store)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		appointmentRepo,
		createAppointmentUC,
		availabilityUC,
		dispatcher,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/team", teamHandler.List)
		api.GET("/team/:id", teamHandler.Get)
		api.GET("/events", eventHandler.List)
		api.GET("/events/active", eventHandler.ListActive)
		api.GET("/gallery", galleryHandler.List)
		api.GET("/availability/:stylistId/:date", appointmentHandler.Availability)

		// Booking works for guests too; a session only claims ownership.
		api.POST("/appointments",
			middleware.OptionalAuth(verifier, db),
			appointmentHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/sync",
			middleware.RequireAuth(verifier, db),
			authHandler.Sync)
		api.GET("/auth/user",
			middleware.RequireAuth(verifier, db),
			authHandler.CurrentUser)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireAuth(verifier, db))
		{
			secured.GET("/appointments/my", appointmentHandler.ListMine)

			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			secured.POST("/upload/profile-photo", uploadHandler.ProfilePhoto)

			// ------------------------------
			// STYLIST + ADMIN
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireStylistOrAdmin())
			{
				staff.GET("/appointments/stylist", appointmentHandler.ListForStylist)
				staff.PATCH("/appointments/:id", appointmentHandler.Update)
				staff.DELETE("/appointments/:id", appointmentHandler.Delete)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.List)

				admin.GET("/users", userHandler.List)
				admin.PATCH("/users/:userId/role", userHandler.UpdateRole)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Archive)

				admin.POST("/team", teamHandler.Create)
				admin.PATCH("/team/:id", teamHandler.Update)
				admin.DELETE("/team/:id", teamHandler.Archive)

				admin.POST("/events", eventHandler.Create)
				admin.PATCH("/events/:id", eventHandler.Update)
				admin.DELETE("/events/:id", eventHandler.Delete)

				admin.POST("/gallery", galleryHandler.Create)
				admin.DELETE("/gallery/:id", galleryHandler.Delete)
			}
		}
	}
}
