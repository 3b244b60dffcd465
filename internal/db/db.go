package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.Project{},
		&models.Experience{},
		&models.Engagement{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// At most one non-cancelled appointment per (date, time_slot).
	// Enforced here so concurrent booking submissions cannot both land;
	// the repository's locked existence check is the first line, this
	// index is the backstop.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (date, time_slot)
        WHERE status <> 'CANCELLED'
    `)

	return db
}
