package config

import (
	"fmt"
	"log"

	"pdfshare-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the configured database and runs migrations. Postgres is
// the production store; the pure-Go sqlite driver exists for local runs
// and tests.
func InitDB(cfg *Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "sqlite":
		// For sqlite, DB_NAME is the file path.
		dialector = sqlite.Open(cfg.DBName)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database connection established")
	return db
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PDF{},
		&models.Vote{},
	)
}
