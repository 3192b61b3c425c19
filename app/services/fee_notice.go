package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

// PublishFeeDueNotice puts a monthly reminder on the notice board with
// the number of students carrying unpaid dues up to the current month.
// Runs at most once per calendar month; a rerun in the same month is a
// no-op.
func PublishFeeDueNotice(db *sql.DB) error {
	now := time.Now()
	session := models.SessionFor(now)

	monthIndex := models.MonthIndex(now.Month())

	var alreadyPublished bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM notices
			  WHERE session = $1 AND kind = $2
			  AND published_on >= date_trunc('month', NOW()::date))`,
		session, models.NoticeFeeDue).Scan(&alreadyPublished)
	if err != nil {
		return err
	}
	if alreadyPublished {
		return nil
	}

	var defaulters int
	err = db.QueryRow(`SELECT COUNT(DISTINCT sf.enrollment_id) FROM student_fees sf
			  JOIN enrollments e ON sf.enrollment_id = e.id
			  WHERE sf.session = $1 AND sf.month_index <= $2
			  AND sf.paid < sf.school_fee + sf.transport_fee
			  AND e.deleted_at IS NULL`,
		session, monthIndex).Scan(&defaulters)
	if err != nil {
		return err
	}
	if defaulters == 0 {
		return nil
	}

	notice := &models.Notice{
		Session: session,
		Title:   fmt.Sprintf("Fee reminder for %s", now.Month()),
		Body: fmt.Sprintf("%d students have unpaid fees up to %s %d. Parents are requested to clear the dues at the school office.",
			defaulters, now.Month(), now.Year()),
		Kind: models.NoticeFeeDue,
	}
	if err := database.CreateNotice(db, notice); err != nil {
		return err
	}
	log.Printf("Published fee due notice for %s: %d students with dues", session, defaulters)
	return nil
}
