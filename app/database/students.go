package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"vidyalaya/app/models"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyPromoted    = errors.New("enrollment is already promoted to the next session")
)

// AdmissionInput carries everything a new admission needs. Identifiers
// are never supplied by the caller; they come from the sequencer.
type AdmissionInput struct {
	Name        string
	FatherName  string
	MotherName  string
	DateOfBirth time.Time
	Gender      models.Gender
	Category    string
	Phone       string
	Address     string
	Documents   []string

	ParentID    *string
	ParentName  string
	ParentPhone string

	Session      models.Session
	ClassID      string
	Subjects     []string
	TransportFee int64
	LumpSum      int64 // amount paid at admission, spread over the session months
}

// AdmitStudent creates the parent (if new), student, enrollment, and the
// twelve fee rows in one transaction. Registration and roll numbers are
// reserved through the counter rows so concurrent admissions cannot
// collide.
func AdmitStudent(db *sql.DB, in *AdmissionInput) (*models.Student, *models.Enrollment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	parentID := in.ParentID
	if parentID == nil && in.ParentName != "" {
		var id string
		err = tx.QueryRow(`INSERT INTO parents (name, phone) VALUES ($1, $2) RETURNING id`,
			in.ParentName, in.ParentPhone).Scan(&id)
		if err != nil {
			return nil, nil, err
		}
		parentID = &id
	}

	student := &models.Student{
		Name:        in.Name,
		FatherName:  in.FatherName,
		MotherName:  in.MotherName,
		DateOfBirth: models.CustomDate{Time: in.DateOfBirth},
		Gender:      in.Gender,
		Category:    in.Category,
		Phone:       in.Phone,
		Address:     in.Address,
		ParentID:    parentID,
		Documents:   in.Documents,
	}
	var dob interface{}
	if !in.DateOfBirth.IsZero() {
		dob = in.DateOfBirth
	}
	err = tx.QueryRow(`INSERT INTO students (name, father_name, mother_name, date_of_birth, gender, category, phone, address, parent_id, documents)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`,
		in.Name, in.FatherName, in.MotherName, dob, in.Gender, in.Category,
		in.Phone, in.Address, parentID, pq.Array(in.Documents)).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}

	enrollment, err := createEnrollment(tx, student.ID, in.Session, in.ClassID, in.Subjects, "")
	if err != nil {
		return nil, nil, err
	}

	if err := createFeesForEnrollment(tx, enrollment, in.TransportFee, in.LumpSum); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	student.Enrollment = enrollment
	return student, enrollment, nil
}

// createEnrollment inserts the session enrollment. When carryRegNo is
// empty a fresh registration number is sequenced; otherwise the number is
// carried forward (readmission).
func createEnrollment(tx *sql.Tx, studentID string, session models.Session, classID string, subjects []string, carryRegNo string) (*models.Enrollment, error) {
	regNo := carryRegNo
	var err error
	if regNo == "" {
		regNo, err = NextRegistrationNumber(tx, session)
		if err != nil {
			return nil, err
		}
	} else if err := ReserveRegistrationNumber(tx, session, regNo); err != nil {
		return nil, err
	}
	roll, err := NextRollNumber(tx, session, classID)
	if err != nil {
		return nil, err
	}

	if len(subjects) == 0 {
		subjects, err = classSubjects(tx, classID)
		if err != nil {
			return nil, err
		}
	}

	enrollment := &models.Enrollment{
		StudentID:      studentID,
		Session:        session,
		ClassID:        classID,
		RollNumber:     roll,
		RegistrationNo: regNo,
		Subjects:       subjects,
	}
	err = tx.QueryRow(`INSERT INTO enrollments (student_id, session, class_id, roll_number, registration_no, subjects)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`,
		studentID, session, classID, roll, regNo, pq.Array(subjects)).
		Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func classSubjects(tx *sql.Tx, classID string) ([]string, error) {
	rows, err := tx.Query(`SELECT subject FROM class_subjects WHERE class_id = $1 ORDER BY subject`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func createFeesForEnrollment(tx *sql.Tx, enrollment *models.Enrollment, transportFee, lumpSum int64) error {
	var schoolFee int64
	err := tx.QueryRow(`SELECT COALESCE(SUM(h.amount), 0)
			  FROM fee_plan_heads h JOIN fee_plans p ON h.fee_plan_id = p.id
			  WHERE p.class_id = $1`, enrollment.ClassID).Scan(&schoolFee)
	if err != nil {
		return err
	}

	fees, err := BuildSessionFees(enrollment.Session, enrollment.ID, schoolFee, transportFee, lumpSum)
	if err != nil {
		return err
	}
	return insertSessionFees(tx, fees)
}

// ReadmitStudent enrolls a student for the next session. The registration
// number carries forward, the roll number is re-derived for the target
// class, and the old enrollment is marked promoted and linked forward.
func ReadmitStudent(db *sql.DB, enrollmentID, toClassID string, transportFee, lumpSum int64) (*models.Enrollment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var old models.Enrollment
	err = tx.QueryRow(`SELECT id, student_id, session, class_id, roll_number, registration_no, promoted
			  FROM enrollments WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, enrollmentID).
		Scan(&old.ID, &old.StudentID, &old.Session, &old.ClassID, &old.RollNumber, &old.RegistrationNo, &old.Promoted)
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, err
	}
	if old.Promoted {
		return nil, ErrAlreadyPromoted
	}

	nextSession, err := old.Session.Next()
	if err != nil {
		return nil, err
	}

	enrollment, err := createEnrollment(tx, old.StudentID, nextSession, toClassID, nil, old.RegistrationNo)
	if err != nil {
		return nil, err
	}

	if err := createFeesForEnrollment(tx, enrollment, transportFee, lumpSum); err != nil {
		return nil, err
	}

	_, err = tx.Exec(`UPDATE enrollments SET promoted = true, next_enrollment_id = $2, updated_at = NOW() WHERE id = $1`,
		old.ID, enrollment.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return enrollment, nil
}

const enrollmentSelect = `SELECT e.id, e.student_id, e.session, e.class_id, e.roll_number, e.registration_no,
		e.subjects, e.promoted, e.next_enrollment_id, e.created_at, e.updated_at,
		s.name, s.father_name, s.mother_name, s.date_of_birth, s.gender, s.category, s.phone, s.address, s.photo_url, s.parent_id,
		c.name, c.section
	FROM enrollments e
	JOIN students s ON e.student_id = s.id
	JOIN classes c ON e.class_id = c.id`

func scanEnrollment(scan func(dest ...interface{}) error) (*models.Enrollment, error) {
	e := &models.Enrollment{Student: &models.Student{}, Class: &models.Class{}}
	var subjects pq.StringArray
	var dob sql.NullTime
	err := scan(&e.ID, &e.StudentID, &e.Session, &e.ClassID, &e.RollNumber, &e.RegistrationNo,
		&subjects, &e.Promoted, &e.NextEnrollmentID, &e.CreatedAt, &e.UpdatedAt,
		&e.Student.Name, &e.Student.FatherName, &e.Student.MotherName, &dob,
		&e.Student.Gender, &e.Student.Category, &e.Student.Phone, &e.Student.Address,
		&e.Student.PhotoURL, &e.Student.ParentID,
		&e.Class.Name, &e.Class.Section)
	if err != nil {
		return nil, err
	}
	e.Subjects = subjects
	e.Student.ID = e.StudentID
	e.Class.ID = e.ClassID
	if dob.Valid {
		e.Student.DateOfBirth = models.CustomDate{Time: dob.Time}
	}
	return e, nil
}

// GetEnrollmentByID loads an enrollment with its student and class.
func GetEnrollmentByID(db *sql.DB, id string) (*models.Enrollment, error) {
	row := db.QueryRow(enrollmentSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL`, id)
	e, err := scanEnrollment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	return e, err
}

// GetEnrollmentsByClassSession lists a class's students for a session,
// roll-number order.
func GetEnrollmentsByClassSession(db *sql.DB, classID string, session models.Session) ([]*models.Enrollment, error) {
	rows, err := db.Query(enrollmentSelect+` WHERE e.class_id = $1 AND e.session = $2 AND e.deleted_at IS NULL
			  ORDER BY NULLIF(regexp_replace(e.roll_number, '\D', '', 'g'), '')::int NULLS LAST, e.roll_number`,
		classID, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows.Scan)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// SearchEnrollments finds students by name, registration number or roll
// number within a session.
func SearchEnrollments(db *sql.DB, session models.Session, term string, limit int) ([]*models.Enrollment, error) {
	rows, err := db.Query(enrollmentSelect+` WHERE e.session = $1 AND e.deleted_at IS NULL
			  AND (s.name ILIKE '%' || $2 || '%' OR e.registration_no = $2 OR e.roll_number = $2)
			  ORDER BY s.name LIMIT $3`,
		session, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows.Scan)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// UpdateStudent updates the identity fields of a student.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	var dob interface{}
	if !s.DateOfBirth.IsZero() {
		dob = s.DateOfBirth.Time
	}
	_, err := db.Exec(`UPDATE students SET name = $2, father_name = $3, mother_name = $4, date_of_birth = $5,
			  gender = $6, category = $7, phone = $8, address = $9, photo_url = $10, documents = $11, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`,
		s.ID, s.Name, s.FatherName, s.MotherName, dob, s.Gender, s.Category,
		s.Phone, s.Address, s.PhotoURL, pq.Array(s.Documents))
	return err
}

// SoftDeleteStudent marks a student and their open enrollments deleted.
// Nothing is ever hard-deleted.
func SoftDeleteStudent(db *sql.DB, studentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE students SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, studentID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE enrollments SET deleted_at = NOW() WHERE student_id = $1 AND deleted_at IS NULL`, studentID); err != nil {
		return err
	}
	return tx.Commit()
}
