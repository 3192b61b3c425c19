package database

import (
	"database/sql"
	"time"

	"vidyalaya/app/models"
)

// IsHoliday reports whether a date has been flagged as a holiday.
func IsHoliday(db *sql.DB, date time.Time) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`, dateOnly(date)).Scan(&exists)
	return exists, err
}

// MarkStudentAttendance sets or changes a student's status for one day,
// keeping the monthly counters in step within the same transaction.
// Returns ErrNoChange when the cell already holds the requested status.
func MarkStudentAttendance(db *sql.DB, enrollmentID string, date time.Time, status models.AttendanceStatus, markedBy string, today time.Time) (*models.StudentAttendance, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	day := dateOnly(date)

	var holiday bool
	if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`, day).Scan(&holiday); err != nil {
		return nil, err
	}

	var current models.AttendanceStatus
	err = tx.QueryRow(`SELECT status FROM student_attendances WHERE enrollment_id = $1 AND date = $2 FOR UPDATE`,
		enrollmentID, day).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	if err := ValidateMark(current, status, day, today, holiday); err != nil {
		return nil, err
	}

	record := &models.StudentAttendance{
		EnrollmentID: enrollmentID,
		Date:         day,
		Status:       status,
		MarkedBy:     &markedBy,
	}
	err = tx.QueryRow(`INSERT INTO student_attendances (enrollment_id, date, status, marked_by)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (enrollment_id, date)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id`,
		enrollmentID, day, status, markedBy).Scan(&record.ID)
	if err != nil {
		return nil, err
	}

	// Counter upkeep: decrement the old status, increment the new one.
	var present, absent int
	err = tx.QueryRow(`SELECT present, absent FROM attendance_summaries WHERE enrollment_id = $1 AND year = $2 AND month = $3 FOR UPDATE`,
		enrollmentID, day.Year(), int(day.Month())).Scan(&present, &absent)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	present, absent = AdjustCounts(present, absent, current, status)
	_, err = tx.Exec(`INSERT INTO attendance_summaries (enrollment_id, year, month, present, absent)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (enrollment_id, year, month)
			  DO UPDATE SET present = EXCLUDED.present, absent = EXCLUDED.absent`,
		enrollmentID, day.Year(), int(day.Month()), present, absent)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

// GetStudentMonthAttendance returns the day-keyed statuses and the stored
// counters for one enrollment and calendar month.
func GetStudentMonthAttendance(db *sql.DB, enrollmentID string, year int, month time.Month) (map[int]models.AttendanceStatus, *models.AttendanceSummary, error) {
	rows, err := db.Query(`SELECT date, status FROM student_attendances
			  WHERE enrollment_id = $1 AND date >= $2 AND date < $3`,
		enrollmentID,
		time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
		time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	statuses := make(map[int]models.AttendanceStatus)
	for rows.Next() {
		var d time.Time
		var s models.AttendanceStatus
		if err := rows.Scan(&d, &s); err != nil {
			return nil, nil, err
		}
		statuses[d.Day()] = s
	}

	summary := &models.AttendanceSummary{EnrollmentID: enrollmentID, Year: year, Month: month}
	err = db.QueryRow(`SELECT present, absent FROM attendance_summaries WHERE enrollment_id = $1 AND year = $2 AND month = $3`,
		enrollmentID, year, int(month)).Scan(&summary.Present, &summary.Absent)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, err
	}
	return statuses, summary, nil
}

// GetClassAttendanceByDate returns the marked statuses of a class for one
// date, keyed by enrollment.
func GetClassAttendanceByDate(db *sql.DB, classID string, session models.Session, date time.Time) (map[string]models.AttendanceStatus, error) {
	rows, err := db.Query(`SELECT sa.enrollment_id, sa.status
			  FROM student_attendances sa
			  JOIN enrollments e ON sa.enrollment_id = e.id
			  WHERE e.class_id = $1 AND e.session = $2 AND sa.date = $3`,
		classID, session, dateOnly(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]models.AttendanceStatus)
	for rows.Next() {
		var id string
		var s models.AttendanceStatus
		if err := rows.Scan(&id, &s); err != nil {
			return nil, err
		}
		result[id] = s
	}
	return result, rows.Err()
}

// SetHoliday flags a date as a holiday and publishes the closure on the
// notice board in the same transaction. A date already flagged is
// rejected with ErrHolidayLocked; holidays are never unset.
func SetHoliday(db *sql.DB, session models.Session, date time.Time, reason string) (*models.Holiday, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	day := dateOnly(date)

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`, day).Scan(&exists); err != nil {
		return nil, err
	}
	if err := ValidateHoliday(exists); err != nil {
		return nil, err
	}

	holiday := &models.Holiday{Session: session, Date: day, Reason: reason}
	err = tx.QueryRow(`INSERT INTO holidays (session, date, reason) VALUES ($1, $2, $3) RETURNING id, created_at`,
		session, day, reason).Scan(&holiday.ID, &holiday.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`INSERT INTO notices (session, title, body, kind, published_on)
			  VALUES ($1, $2, $3, $4, $5)`,
		session, "School closed: "+reason,
		"The school will remain closed on "+day.Format("02 Jan 2006")+". Reason: "+reason,
		models.NoticeHoliday, day)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return holiday, nil
}

// GetHolidays lists the holidays of a session in date order.
func GetHolidays(db *sql.DB, session models.Session) ([]*models.Holiday, error) {
	rows, err := db.Query(`SELECT id, session, date, reason, created_at FROM holidays WHERE session = $1 ORDER BY date`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		h := &models.Holiday{}
		if err := rows.Scan(&h.ID, &h.Session, &h.Date, &h.Reason, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// HolidaysInMonth returns the flagged holiday days for one calendar month.
func HolidaysInMonth(db *sql.DB, year int, month time.Month) (map[int]bool, error) {
	rows, err := db.Query(`SELECT date FROM holidays WHERE date >= $1 AND date < $2`,
		time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
		time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[int]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days[d.Day()] = true
	}
	return days, rows.Err()
}
