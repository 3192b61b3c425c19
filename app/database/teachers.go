package database

import (
	"database/sql"
	"errors"

	"vidyalaya/app/models"
)

var (
	ErrTeacherNotFound        = errors.New("teacher not found")
	ErrTeacherAlreadyPromoted = errors.New("teacher is already carried to the next session")
)

// CreateTeacher inserts a staff member.
func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	var joined interface{}
	if !t.JoinedOn.IsZero() {
		joined = t.JoinedOn.Time
	}
	return db.QueryRow(`INSERT INTO teachers (name, role, subject, monthly_salary, session, class_teacher_of, phone, email, joined_on)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`,
		t.Name, t.Role, t.Subject, t.MonthlySalary, t.Session, t.ClassTeacherOf,
		t.Phone, t.Email, joined).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

const teacherSelect = `SELECT id, name, role, subject, monthly_salary, session, class_teacher_of,
		phone, email, joined_on, promoted, next_teacher_id, created_at, updated_at
	FROM teachers`

func scanTeacher(scan func(dest ...interface{}) error) (*models.Teacher, error) {
	t := &models.Teacher{}
	var joined sql.NullTime
	err := scan(&t.ID, &t.Name, &t.Role, &t.Subject, &t.MonthlySalary, &t.Session,
		&t.ClassTeacherOf, &t.Phone, &t.Email, &joined, &t.Promoted, &t.NextTeacherID,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if joined.Valid {
		t.JoinedOn = models.CustomDate{Time: joined.Time}
	}
	return t, nil
}

// GetTeacherByID loads one staff member.
func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	row := db.QueryRow(teacherSelect+` WHERE id = $1 AND deleted_at IS NULL`, id)
	t, err := scanTeacher(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTeacherNotFound
	}
	return t, err
}

// GetTeachersBySession lists staff for a session, optionally restricted
// to a role.
func GetTeachersBySession(db *sql.DB, session models.Session, role models.StaffRole) ([]*models.Teacher, error) {
	query := teacherSelect + ` WHERE session = $1 AND deleted_at IS NULL`
	args := []interface{}{session}
	if role != "" {
		query += ` AND role = $2`
		args = append(args, role)
	}
	query += ` ORDER BY name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows.Scan)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// UpdateTeacher updates a staff member's details.
func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	var joined interface{}
	if !t.JoinedOn.IsZero() {
		joined = t.JoinedOn.Time
	}
	_, err := db.Exec(`UPDATE teachers SET name = $2, role = $3, subject = $4, monthly_salary = $5,
			  class_teacher_of = $6, phone = $7, email = $8, joined_on = $9, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`,
		t.ID, t.Name, t.Role, t.Subject, t.MonthlySalary, t.ClassTeacherOf, t.Phone, t.Email, joined)
	return err
}

// SoftDeleteTeacher marks a staff member deleted.
func SoftDeleteTeacher(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE teachers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}

// CarryTeacherToNextSession duplicates a teacher row into the next
// session and links the old row forward, mirroring student readmission.
func CarryTeacherToNextSession(db *sql.DB, teacherID string) (*models.Teacher, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRow(teacherSelect+` WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, teacherID)
	old, err := scanTeacher(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, err
	}
	if old.Promoted {
		return nil, ErrTeacherAlreadyPromoted
	}

	nextSession, err := old.Session.Next()
	if err != nil {
		return nil, err
	}

	next := &models.Teacher{
		Name:           old.Name,
		Role:           old.Role,
		Subject:        old.Subject,
		MonthlySalary:  old.MonthlySalary,
		Session:        nextSession,
		ClassTeacherOf: old.ClassTeacherOf,
		Phone:          old.Phone,
		Email:          old.Email,
		JoinedOn:       old.JoinedOn,
	}
	var joined interface{}
	if !next.JoinedOn.IsZero() {
		joined = next.JoinedOn.Time
	}
	err = tx.QueryRow(`INSERT INTO teachers (name, role, subject, monthly_salary, session, class_teacher_of, phone, email, joined_on)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`,
		next.Name, next.Role, next.Subject, next.MonthlySalary, next.Session,
		next.ClassTeacherOf, next.Phone, next.Email, joined).
		Scan(&next.ID, &next.CreatedAt, &next.UpdatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`UPDATE teachers SET promoted = true, next_teacher_id = $2, updated_at = NOW() WHERE id = $1`,
		old.ID, next.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return next, nil
}
