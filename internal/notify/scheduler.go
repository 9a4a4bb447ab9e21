package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Scheduler delivers progress digests on a cron schedule.
type Scheduler struct {
	db       *gorm.DB
	expr     string
	adapters []Adapter
}

// NewScheduler validates the cron expression and returns a Scheduler.
func NewScheduler(db *gorm.DB, expr string, adapters ...Adapter) (*Scheduler, error) {
	if _, err := cronParser.Parse(expr); err != nil {
		return nil, fmt.Errorf("notify: invalid cron expression %q: %w", expr, err)
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("notify: at least one adapter is required")
	}
	return &Scheduler{db: db, expr: expr, adapters: adapters}, nil
}

// Run blocks, delivering a digest at each cron fire time, until ctx is
// cancelled. Delivery failures are logged and the schedule continues.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		d := nextCronDuration(s.expr)
		if d <= 0 {
			d = time.Minute
		}
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if err := SendDigest(ctx, s.db, s.adapters...); err != nil {
				log.Printf("notify: digest delivery: %v", err)
			}
		}
	}
}

// SendDigest builds the progress digest and delivers it through every
// adapter. Delivery is suppressed when the checklist is empty. Errors
// from individual adapters are collected so one failing platform does
// not block the others.
func SendDigest(ctx context.Context, db *gorm.DB, adapters ...Adapter) error {
	report := BuildDigest(db)
	if report == nil {
		return nil
	}
	msg := FormatDigest(report)

	var errs []string
	for _, a := range adapters {
		if err := a.Send(ctx, msg); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: send digest: %s", strings.Join(errs, "; "))
	}
	return nil
}
