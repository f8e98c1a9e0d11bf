package database

import (
	"fmt"
	"log"

	"github.com/ksdarko/genslip-api/internal/config"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.PasswordResetToken{},
		&entity.UserSettings{},

		// Receipt entities
		&entity.Receipt{},
		&entity.LineItem{},
		&entity.Template{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the built-in receipt templates.
// Built-in rows are upserted so theme tweaks in a new release reach
// existing databases.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, tpl := range entity.BuiltInTemplates() {
		var existing entity.Template
		err := db.Where("id = ?", tpl.ID).First(&existing).Error
		if err != nil {
			if err := db.Create(&tpl).Error; err != nil {
				log.Printf("Warning: failed to create template %s: %v", tpl.ID, err)
			}
			continue
		}
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"name":        tpl.Name,
			"description": tpl.Description,
			"built_in":    true,
		}).Error; err != nil {
			log.Printf("Warning: failed to update template %s: %v", tpl.ID, err)
			continue
		}
		if err := db.Model(&existing).Updates(&entity.Template{Theme: tpl.Theme}).Error; err != nil {
			log.Printf("Warning: failed to update template theme %s: %v", tpl.ID, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
