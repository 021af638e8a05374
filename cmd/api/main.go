package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonbelle/booking-api/internal/cache"
	"github.com/salonbelle/booking-api/internal/config"
	dbpkg "github.com/salonbelle/booking-api/internal/db"
	"github.com/salonbelle/booking-api/internal/middleware"
	"github.com/salonbelle/booking-api/internal/routes"
	"github.com/salonbelle/booking-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	unread, err := cache.NewUnread(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	// Uploads stay disabled until a bucket is configured.
	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		store = storage.NewS3(cfg)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, unread, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
