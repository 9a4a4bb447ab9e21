package tracker

import (
	"log"
	"math"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
)

// Summary holds point totals for a sector or coordinator scope. It is
// derived fresh on every query and never persisted.
type Summary struct {
	TotalPoints     int `json:"totalPoints"`
	CompletedPoints int `json:"completedPoints"`
	Percentage      int `json:"percentage"`
}

// SectorProgress computes the weighted completion summary for a sector.
// A requirement's points count toward CompletedPoints only when its
// resolved status is concluido; pendente and em_andamento contribute to
// TotalPoints alone. A storage failure degrades to a zero summary —
// progress queries always succeed with a value.
func SectorProgress(db *gorm.DB, sector string) Summary {
	reqs, err := listBySector(db, sector)
	if err != nil {
		log.Printf("tracker: progress for sector %q: %v", sector, err)
		return Summary{}
	}
	return summarize(db, reqs)
}

// CoordinatorProgress computes the weighted completion summary for an
// executive coordinator, with the same degradation rules as SectorProgress.
func CoordinatorProgress(db *gorm.DB, coordinator string) Summary {
	reqs, err := listByCoordinator(db, coordinator)
	if err != nil {
		log.Printf("tracker: progress for coordinator %q: %v", coordinator, err)
		return Summary{}
	}
	return summarize(db, reqs)
}

func summarize(db *gorm.DB, reqs []models.Requirement) Summary {
	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	resolved := LatestUpdates(db, ids)

	var s Summary
	for _, r := range reqs {
		s.TotalPoints += r.PontosAplicaveis2026
		if u := resolved[r.ID]; u != nil && u.Status == StatusConcluido {
			s.CompletedPoints += r.PontosAplicaveis2026
		}
	}
	s.Percentage = Percentage(s.CompletedPoints, s.TotalPoints)
	return s
}

// Percentage returns the half-up rounded completion percentage in [0, 100].
// A zero or negative total yields 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
