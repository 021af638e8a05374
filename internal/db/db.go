package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/salonbelle/booking-api/internal/config"
	"github.com/salonbelle/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open picks the driver from the DSN: postgres:// goes to Postgres,
// anything else is treated as a sqlite file (local dev and tests).
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.TeamMember{},
		&models.Service{},
		&models.Appointment{},
		&models.Event{},
		&models.GalleryImage{},
		&models.Notification{},
	); err != nil {
		return err
	}

	// Slot exclusivity: two non-cancelled appointments may not share a
	// stylist/date/time. Partial indexes need raw SQL; Postgres only, the
	// sqlite path relies on the transactional conflict check alone.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`
            CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_slot
            ON appointments (stylist_id, date, time)
            WHERE status <> 'cancelled'
        `).Error; err != nil {
			return err
		}
	}

	return nil
}
