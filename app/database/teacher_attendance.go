package database

import (
	"database/sql"
	"log"
	"time"

	"vidyalaya/app/models"
)

// MarkTeacherAttendance sets or changes a staff member's status for one
// day under the same locking rules as student attendance. Teachers may
// additionally be on leave.
func MarkTeacherAttendance(db *sql.DB, teacherID string, date time.Time, status models.AttendanceStatus, remarks string, today time.Time) (*models.TeacherAttendance, error) {
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
	err = tx.QueryRow(`SELECT status FROM teacher_attendances WHERE teacher_id = $1 AND date = $2 FOR UPDATE`,
		teacherID, day).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	if err := ValidateMark(current, status, day, today, holiday); err != nil {
		return nil, err
	}

	record := &models.TeacherAttendance{
		TeacherID: teacherID,
		Date:      day,
		Status:    status,
		Remarks:   remarks,
	}
	err = tx.QueryRow(`INSERT INTO teacher_attendances (teacher_id, date, status, remarks)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (teacher_id, date)
			  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, updated_at = NOW()
			  RETURNING id`,
		teacherID, day, status, remarks).Scan(&record.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

// GetTeacherAttendanceByDate retrieves all staff attendance records for a
// specific date.
func GetTeacherAttendanceByDate(db *sql.DB, date time.Time) ([]*models.TeacherAttendance, error) {
	query := `SELECT ta.id, ta.teacher_id, ta.date, ta.status, ta.remarks, ta.created_at, ta.updated_at, t.name
			  FROM teacher_attendances ta
			  JOIN teachers t ON ta.teacher_id = t.id
			  WHERE ta.date = $1
			  ORDER BY t.name`

	rows, err := db.Query(query, dateOnly(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.TeacherAttendance
	for rows.Next() {
		record := &models.TeacherAttendance{}
		var name string
		err := rows.Scan(&record.ID, &record.TeacherID, &record.Date, &record.Status,
			&record.Remarks, &record.CreatedAt, &record.UpdatedAt, &name)
		if err != nil {
			log.Printf("Error scanning teacher attendance: %v", err)
			continue
		}
		record.Teacher = &models.Teacher{ID: record.TeacherID, Name: name}
		records = append(records, record)
	}
	return records, nil
}

// GetTeacherMonthAttendance returns the day-keyed statuses for one staff
// member and calendar month.
func GetTeacherMonthAttendance(db *sql.DB, teacherID string, year int, month time.Month) (map[int]models.AttendanceStatus, error) {
	rows, err := db.Query(`SELECT date, status FROM teacher_attendances
			  WHERE teacher_id = $1 AND date >= $2 AND date < $3`,
		teacherID,
		time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
		time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[int]models.AttendanceStatus)
	for rows.Next() {
		var d time.Time
		var s models.AttendanceStatus
		if err := rows.Scan(&d, &s); err != nil {
			return nil, err
		}
		statuses[d.Day()] = s
	}
	return statuses, rows.Err()
}
