package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Requirement{}, &models.RequirementUpdate{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed-data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleData = `[
  {"eixo": "governanca", "item": "1.1", "requisito": "Plano aprovado", "setorExecutor": "TI", "pontosAplicaveis2026": 10},
  {"eixo": "governanca", "item": "1.2", "requisito": "Comitê instituído", "setorExecutor": "RH", "coordenadorExecutivo": "Ana", "pontosAplicaveis2026": 20},
  {"eixo": "produtividade", "item": "2.1", "requisito": "Indicadores publicados", "setorExecutor": "TI", "pontosAplicaveis2026": 5}
]`

func TestRun_LoadsRequirements(t *testing.T) {
	db := testDB(t)
	path := writeSeedFile(t, sampleData)

	res, err := Run(db, path, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Skipped {
		t.Error("run skipped on empty table")
	}
	if res.Loaded != 3 {
		t.Errorf("loaded = %d, want 3", res.Loaded)
	}

	var count int64
	db.Model(&models.Requirement{}).Count(&count)
	if count != 3 {
		t.Errorf("rows = %d, want 3", count)
	}

	var req models.Requirement
	if err := db.Where("item = ?", "1.2").First(&req).Error; err != nil {
		t.Fatalf("load requirement: %v", err)
	}
	if req.CoordenadorExecutivo == nil || *req.CoordenadorExecutivo != "Ana" {
		t.Errorf("coordinator = %v, want Ana", req.CoordenadorExecutivo)
	}
	if req.PontosAplicaveis2026 != 20 {
		t.Errorf("points = %d, want 20", req.PontosAplicaveis2026)
	}
}

func TestRun_SkipsWhenPopulated(t *testing.T) {
	db := testDB(t)
	path := writeSeedFile(t, sampleData)

	if _, err := Run(db, path, false); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	res, err := Run(db, path, false)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !res.Skipped {
		t.Error("second run should skip a populated table")
	}

	var count int64
	db.Model(&models.Requirement{}).Count(&count)
	if count != 3 {
		t.Errorf("rows = %d after skipped run, want 3", count)
	}
}

func TestRun_ForceReloads(t *testing.T) {
	db := testDB(t)
	path := writeSeedFile(t, sampleData)

	if _, err := Run(db, path, false); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	res, err := Run(db, path, true)
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if res.Skipped || res.Loaded != 3 {
		t.Errorf("forced run = %+v, want 3 loaded", res)
	}

	var count int64
	db.Model(&models.Requirement{}).Count(&count)
	if count != 3 {
		t.Errorf("rows = %d after forced reload, want 3", count)
	}
}

func TestRun_MissingFile(t *testing.T) {
	db := testDB(t)
	_, err := Run(db, "/nonexistent/seed-data.json", false)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "seed: read") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestRun_InvalidJSON(t *testing.T) {
	db := testDB(t)
	path := writeSeedFile(t, "{not an array}")
	_, err := Run(db, path, false)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestRun_EmptyArray(t *testing.T) {
	db := testDB(t)
	path := writeSeedFile(t, "[]")
	_, err := Run(db, path, false)
	if err == nil {
		t.Fatal("expected error for empty seed data")
	}
}
