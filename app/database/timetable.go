package database

import (
	"database/sql"

	"vidyalaya/app/models"
)

// CreatePeriod inserts a timetable period.
func CreatePeriod(db *sql.DB, p *models.Period) error {
	return db.QueryRow(`INSERT INTO timetable_periods (session, label, start_time, end_time, type, position)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`,
		p.Session, p.Label, p.StartTime, p.EndTime, p.Type, p.Position).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// UpdatePeriod updates a period's slot details.
func UpdatePeriod(db *sql.DB, p *models.Period) error {
	_, err := db.Exec(`UPDATE timetable_periods SET label = $2, start_time = $3, end_time = $4, type = $5, position = $6, updated_at = NOW()
			  WHERE id = $1`,
		p.ID, p.Label, p.StartTime, p.EndTime, p.Type, p.Position)
	return err
}

// DeletePeriod removes a period and (via cascade) its assignments.
func DeletePeriod(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM timetable_periods WHERE id = $1`, id)
	return err
}

// GetPeriodsBySession returns the session's periods in display order with
// their teacher→class assignments attached.
func GetPeriodsBySession(db *sql.DB, session models.Session) ([]*models.Period, error) {
	rows, err := db.Query(`SELECT id, session, label, start_time, end_time, type, position, created_at, updated_at
			  FROM timetable_periods WHERE session = $1 ORDER BY position, start_time`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*models.Period
	byID := make(map[string]*models.Period)
	for rows.Next() {
		p := &models.Period{}
		err := rows.Scan(&p.ID, &p.Session, &p.Label, &p.StartTime, &p.EndTime, &p.Type, &p.Position, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		p.Assignments = []models.PeriodAssignment{}
		periods = append(periods, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return periods, nil
	}

	aRows, err := db.Query(`SELECT pa.id, pa.period_id, pa.teacher_id, pa.class_id, t.name, c.name, c.section
			  FROM period_assignments pa
			  JOIN timetable_periods p ON pa.period_id = p.id
			  JOIN teachers t ON pa.teacher_id = t.id
			  JOIN classes c ON pa.class_id = c.id
			  WHERE p.session = $1`, session)
	if err != nil {
		return nil, err
	}
	defer aRows.Close()

	for aRows.Next() {
		var a models.PeriodAssignment
		var teacherName, className, section string
		err := aRows.Scan(&a.ID, &a.PeriodID, &a.TeacherID, &a.ClassID, &teacherName, &className, &section)
		if err != nil {
			return nil, err
		}
		a.Teacher = &models.Teacher{ID: a.TeacherID, Name: teacherName}
		a.Class = &models.Class{ID: a.ClassID, Name: className, Section: section}
		if p, ok := byID[a.PeriodID]; ok {
			p.Assignments = append(p.Assignments, a)
		}
	}
	return periods, aRows.Err()
}

// ReplacePeriodAssignments swaps out a period's teacher→class map.
func ReplacePeriodAssignments(db *sql.DB, periodID string, assignments []models.PeriodAssignment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM period_assignments WHERE period_id = $1`, periodID); err != nil {
		return err
	}
	for _, a := range assignments {
		_, err := tx.Exec(`INSERT INTO period_assignments (period_id, teacher_id, class_id) VALUES ($1, $2, $3)`,
			periodID, a.TeacherID, a.ClassID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ReplaceAllAssignments applies a full timetable fill across periods.
func ReplaceAllAssignments(db *sql.DB, fill map[string][]models.PeriodAssignment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for periodID, assignments := range fill {
		if _, err := tx.Exec(`DELETE FROM period_assignments WHERE period_id = $1`, periodID); err != nil {
			return err
		}
		for _, a := range assignments {
			_, err := tx.Exec(`INSERT INTO period_assignments (period_id, teacher_id, class_id) VALUES ($1, $2, $3)`,
				periodID, a.TeacherID, a.ClassID)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
