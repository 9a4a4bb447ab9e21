// Package seed loads the requirement checklist from a JSON export into
// the database. The checklist is reference data: it is loaded once and
// never edited by the tracker afterward.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
)

// batchSize is the number of requirements inserted per statement.
const batchSize = 50

// Result reports what a seed run did.
type Result struct {
	Loaded  int
	Skipped bool
}

// Run reads a JSON array of requirements from path and inserts it in
// batches. When the table is already populated the run is skipped unless
// force is set; force wipes the table first.
func Run(db *gorm.DB, path string, force bool) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var reqs []models.Requirement
	if err := json.Unmarshal(data, &reqs); err != nil {
		return Result{}, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	if len(reqs) == 0 {
		return Result{}, fmt.Errorf("seed: %s contains no requirements", path)
	}

	var count int64
	if err := db.Model(&models.Requirement{}).Count(&count).Error; err != nil {
		return Result{}, fmt.Errorf("seed: count requirements: %w", err)
	}
	if count > 0 {
		if !force {
			return Result{Skipped: true}, nil
		}
		if err := db.Where("1 = 1").Delete(&models.Requirement{}).Error; err != nil {
			return Result{}, fmt.Errorf("seed: clear requirements: %w", err)
		}
	}

	if err := db.CreateInBatches(reqs, batchSize).Error; err != nil {
		return Result{}, fmt.Errorf("seed: insert requirements: %w", err)
	}
	return Result{Loaded: len(reqs)}, nil
}
