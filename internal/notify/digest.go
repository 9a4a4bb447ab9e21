package notify

import (
	"time"

	"github.com/ogomes/farol/internal/tracker"
	"gorm.io/gorm"
)

// SectorDigest holds the completion summary for a single sector.
type SectorDigest struct {
	Sector  string
	Summary tracker.Summary
}

// DigestReport holds per-sector progress for one digest delivery.
type DigestReport struct {
	GeneratedAt time.Time
	Sectors     []SectorDigest
	Overall     tracker.Summary
}

// BuildDigest queries progress for every sector and returns a report.
// Returns nil when the checklist is empty, suppressing delivery.
func BuildDigest(db *gorm.DB) *DigestReport {
	sectors := tracker.Sectors(db)
	if len(sectors) == 0 {
		return nil
	}

	report := &DigestReport{GeneratedAt: time.Now()}
	for _, sector := range sectors {
		summary := tracker.SectorProgress(db, sector)
		report.Sectors = append(report.Sectors, SectorDigest{Sector: sector, Summary: summary})
		report.Overall.TotalPoints += summary.TotalPoints
		report.Overall.CompletedPoints += summary.CompletedPoints
	}
	report.Overall.Percentage = tracker.Percentage(report.Overall.CompletedPoints, report.Overall.TotalPoints)
	return report
}
