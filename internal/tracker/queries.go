package tracker

import (
	"log"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
)

// RequirementWithUpdate pairs a requirement with its resolved current
// update. Update is nil when no status has been recorded yet.
type RequirementWithUpdate struct {
	models.Requirement
	Update *models.RequirementUpdate `json:"update"`
}

// Sectors returns the distinct executing sectors in alphabetical order.
// A storage failure degrades to an empty list.
func Sectors(db *gorm.DB) []string {
	var sectors []string
	if err := db.Model(&models.Requirement{}).
		Distinct("setor_executor").
		Order("setor_executor ASC").
		Pluck("setor_executor", &sectors).Error; err != nil {
		log.Printf("tracker: list sectors: %v", err)
		return []string{}
	}
	return sectors
}

// Coordinators returns the distinct executive coordinators in alphabetical
// order. Requirements without a coordinator are skipped. A storage failure
// degrades to an empty list.
func Coordinators(db *gorm.DB) []string {
	var coordinators []string
	if err := db.Model(&models.Requirement{}).
		Distinct("coordenador_executivo").
		Where("coordenador_executivo IS NOT NULL AND coordenador_executivo != ''").
		Order("coordenador_executivo ASC").
		Pluck("coordenador_executivo", &coordinators).Error; err != nil {
		log.Printf("tracker: list coordinators: %v", err)
		return []string{}
	}
	return coordinators
}

// BySector returns the requirements owned by the given sector, each with
// its resolved current update. Scope matching is an exact string match on
// setor_executor; an unknown sector yields an empty list, never an error.
func BySector(db *gorm.DB, sector string) []RequirementWithUpdate {
	reqs, err := listBySector(db, sector)
	if err != nil {
		log.Printf("tracker: requirements for sector %q: %v", sector, err)
		return []RequirementWithUpdate{}
	}
	return attachUpdates(db, reqs)
}

// ByCoordinator returns the requirements owned by the given executive
// coordinator, each with its resolved current update.
func ByCoordinator(db *gorm.DB, coordinator string) []RequirementWithUpdate {
	reqs, err := listByCoordinator(db, coordinator)
	if err != nil {
		log.Printf("tracker: requirements for coordinator %q: %v", coordinator, err)
		return []RequirementWithUpdate{}
	}
	return attachUpdates(db, reqs)
}

func listBySector(db *gorm.DB, sector string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := db.Where("setor_executor = ?", sector).
		Order("id ASC").Find(&reqs).Error
	return reqs, err
}

func listByCoordinator(db *gorm.DB, coordinator string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := db.Where("coordenador_executivo = ?", coordinator).
		Order("id ASC").Find(&reqs).Error
	return reqs, err
}

// attachUpdates runs the resolver over the requirement set and pairs each
// row with its current update.
func attachUpdates(db *gorm.DB, reqs []models.Requirement) []RequirementWithUpdate {
	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	resolved := LatestUpdates(db, ids)

	out := make([]RequirementWithUpdate, len(reqs))
	for i, r := range reqs {
		out[i] = RequirementWithUpdate{Requirement: r, Update: resolved[r.ID]}
	}
	return out
}
