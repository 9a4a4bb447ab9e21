package tracker

import (
	"testing"
	"time"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory SQLite DB with the requirement tables migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Requirement{},
		&models.RequirementUpdate{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// brokenDB returns a migrated DB whose underlying connection has been
// closed, so every subsequent query fails. Used to exercise the storage
// degradation paths.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close sql db: %v", err)
	}
	return db
}

// dropUpdateUniqueIndex removes the one-row-per-requirement constraint so
// tests can build the multi-row histories that predate it.
func dropUpdateUniqueIndex(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Migrator().DropIndex(&models.RequirementUpdate{}, "RequirementID"); err != nil {
		t.Fatalf("drop unique index: %v", err)
	}
}

func seedRequirement(t *testing.T, db *gorm.DB, sector string, points int, coordinator string) models.Requirement {
	t.Helper()
	req := models.Requirement{
		Eixo:                 "governanca",
		Item:                 "1.1",
		Requisito:            "Requisito de teste",
		SetorExecutor:        sector,
		PontosAplicaveis2026: points,
	}
	if coordinator != "" {
		req.CoordenadorExecutivo = &coordinator
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed requirement: %v", err)
	}
	return req
}

func seedUpdate(t *testing.T, db *gorm.DB, reqID int64, status string, updatedAt time.Time) models.RequirementUpdate {
	t.Helper()
	u := models.RequirementUpdate{
		RequirementID: reqID,
		Status:        status,
		CreatedAt:     updatedAt,
		UpdatedAt:     updatedAt,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed update: %v", err)
	}
	return u
}
