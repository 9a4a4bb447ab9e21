package db

import (
	"fmt"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Requirement{},
		&models.RequirementUpdate{},
	}
}

// AutoMigrate creates or updates all tables, including the unique index on
// requirement_updates.requirement_id that backs the upsert write path.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
