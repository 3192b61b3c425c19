package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"vidyalaya/app/models"
)

// ErrDuplicateResult is returned when a result already exists for the
// enrollment, exam type and session.
var ErrDuplicateResult = errors.New("result already entered for this exam")

// CreateExamResult stores a marksheet. Duplicates for the same
// (enrollment, session, exam type) are rejected.
func CreateExamResult(db *sql.DB, result *models.ExamResult) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO exam_results (enrollment_id, session, exam_type)
			  VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		result.EnrollmentID, result.Session, result.ExamType).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateResult
		}
		return err
	}

	for i := range result.Rows {
		row := &result.Rows[i]
		row.ExamResultID = result.ID
		err = tx.QueryRow(`INSERT INTO exam_result_rows (exam_result_id, subject, total, marks)
				  VALUES ($1, $2, $3, $4) RETURNING id`,
			result.ID, row.Subject, row.Total, row.Marks).Scan(&row.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetExamResult loads one result with its subject rows, or nil when no
// result has been entered yet.
func GetExamResult(db *sql.DB, enrollmentID string, session models.Session, examType string) (*models.ExamResult, error) {
	result := &models.ExamResult{}
	err := db.QueryRow(`SELECT id, enrollment_id, session, exam_type, created_at, updated_at
			  FROM exam_results WHERE enrollment_id = $1 AND session = $2 AND exam_type = $3`,
		enrollmentID, session, examType).
		Scan(&result.ID, &result.EnrollmentID, &result.Session, &result.ExamType, &result.CreatedAt, &result.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := loadResultRows(db, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetExamResultsByEnrollment lists all results for one enrollment.
func GetExamResultsByEnrollment(db *sql.DB, enrollmentID string) ([]*models.ExamResult, error) {
	rows, err := db.Query(`SELECT id, enrollment_id, session, exam_type, created_at, updated_at
			  FROM exam_results WHERE enrollment_id = $1 ORDER BY created_at`, enrollmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		r := &models.ExamResult{}
		err := rows.Scan(&r.ID, &r.EnrollmentID, &r.Session, &r.ExamType, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if err := loadResultRows(db, r); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func loadResultRows(db *sql.DB, result *models.ExamResult) error {
	rows, err := db.Query(`SELECT id, exam_result_id, subject, total, marks
			  FROM exam_result_rows WHERE exam_result_id = $1 ORDER BY subject`, result.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row models.SubjectMark
		if err := rows.Scan(&row.ID, &row.ExamResultID, &row.Subject, &row.Total, &row.Marks); err != nil {
			return err
		}
		result.Rows = append(result.Rows, row)
	}
	return rows.Err()
}
