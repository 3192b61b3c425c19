package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler starts the background job runner. Jobs run in the
// process time zone, which main sets before anything else.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	// Fee-due reminder on the 5th of every month at 08:00.
	if _, err := c.AddFunc("0 8 5 * *", func() {
		if err := PublishFeeDueNotice(db); err != nil {
			log.Printf("Error publishing fee due notice: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule fee due notice: %v", err)
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
