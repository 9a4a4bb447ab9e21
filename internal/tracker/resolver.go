package tracker

import (
	"log"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
)

// LatestUpdates resolves the current update for each of the given
// requirement IDs. Every input ID appears in the result exactly once;
// requirements with no update row map to nil and are treated as pendente
// by downstream consumers.
//
// The current update is the row with the greatest UpdatedAt, ties broken
// by greatest ID. The upsert write path keeps one row per requirement,
// but histories that accumulated rows before the unique index existed
// resolve the same way on every read path.
//
// A storage failure degrades to a nil update for every requirement so
// that read paths always produce a renderable result.
func LatestUpdates(db *gorm.DB, ids []int64) map[int64]*models.RequirementUpdate {
	resolved := make(map[int64]*models.RequirementUpdate, len(ids))
	for _, id := range ids {
		resolved[id] = nil
	}
	if len(ids) == 0 {
		return resolved
	}

	var updates []models.RequirementUpdate
	if err := db.Where("requirement_id IN ?", ids).
		Order("updated_at ASC, id ASC").
		Find(&updates).Error; err != nil {
		log.Printf("tracker: resolve updates: %v (treating all as pendente)", err)
		return resolved
	}

	// Ascending scan: the last row seen per requirement is the winner.
	for i := range updates {
		u := updates[i]
		if _, ok := resolved[u.RequirementID]; ok {
			resolved[u.RequirementID] = &u
		}
	}
	return resolved
}
