// services/scheduler.go
package services

import (
	"log"
	"time"

	"game-event-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartExpiryScheduler tombstones events whose end date has passed. The
// eligibility engine itself treats EndDate as informational; this job is what
// actually takes expired events out of default reads.
func (s *EventService) StartExpiryScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			now := time.Now()
			// zero end_date means the event never expires
			res := s.DB.Where("end_date > ? AND end_date <= ?", time.Time{}, now).Delete(&models.Event{})
			if res.Error != nil {
				log.Printf("[ExpiryScheduler] DB error: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("✅ Archived %d expired event(s)", res.RowsAffected)
			}
		}),
	)
}
