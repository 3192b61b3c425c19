package database

import (
	"database/sql"

	"vidyalaya/app/models"
)

// GetSchoolDetails returns the singleton school record, or nil before
// first-time setup.
func GetSchoolDetails(db *sql.DB) (*models.SchoolDetails, error) {
	s := &models.SchoolDetails{}
	err := db.QueryRow(`SELECT id, name, address, phone, email, affiliation, logo_url, updated_at
			  FROM school_details LIMIT 1`).
		Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.Affiliation, &s.LogoURL, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// UpsertSchoolDetails writes the singleton school record.
func UpsertSchoolDetails(db *sql.DB, s *models.SchoolDetails) error {
	existing, err := GetSchoolDetails(db)
	if err != nil {
		return err
	}
	if existing == nil {
		return db.QueryRow(`INSERT INTO school_details (name, address, phone, email, affiliation, logo_url)
				  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, updated_at`,
			s.Name, s.Address, s.Phone, s.Email, s.Affiliation, s.LogoURL).
			Scan(&s.ID, &s.UpdatedAt)
	}
	s.ID = existing.ID
	_, err = db.Exec(`UPDATE school_details SET name = $2, address = $3, phone = $4, email = $5, affiliation = $6, logo_url = $7, updated_at = NOW()
			  WHERE id = $1`,
		s.ID, s.Name, s.Address, s.Phone, s.Email, s.Affiliation, s.LogoURL)
	return err
}

// GetSchoolRegistration returns the registration/status record for this
// school, or nil when the school is not registered.
func GetSchoolRegistration(db *sql.DB, schoolID string) (*models.SchoolRegistration, error) {
	r := &models.SchoolRegistration{}
	err := db.QueryRow(`SELECT school_id, status, registered_at, updated_at
			  FROM school_registrations WHERE school_id = $1`, schoolID).
		Scan(&r.SchoolID, &r.Status, &r.RegisteredAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// GetClassSubjectMap returns the master class→subjects mapping.
func GetClassSubjectMap(db *sql.DB) (map[string][]string, error) {
	rows, err := db.Query(`SELECT class_id, subject FROM class_subjects ORDER BY class_id, subject`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var classID, subject string
		if err := rows.Scan(&classID, &subject); err != nil {
			return nil, err
		}
		result[classID] = append(result[classID], subject)
	}
	return result, rows.Err()
}

// SetClassSubjects replaces the subject list of one class.
func SetClassSubjects(db *sql.DB, classID string, subjects []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM class_subjects WHERE class_id = $1`, classID); err != nil {
		return err
	}
	for _, s := range subjects {
		if _, err := tx.Exec(`INSERT INTO class_subjects (class_id, subject) VALUES ($1, $2)`, classID, s); err != nil {
			return err
		}
	}
	return tx.Commit()
}
