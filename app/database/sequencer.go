package database

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"vidyalaya/app/models"
)

// Seed values returned when a scope has no prior identifiers.
const (
	RegistrationSeed = 1001
	RollNumberSeed   = 1
)

// NextIdentifier applies the max+1 rule over existing identifier strings.
// Non-numeric values are skipped; an empty (or all-malformed) scope falls
// back to the seed.
func NextIdentifier(existing []string, seed int) string {
	max := 0
	found := false
	for _, s := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		found = true
		if n > max {
			max = n
		}
	}
	if !found {
		return strconv.Itoa(seed)
	}
	return strconv.Itoa(max + 1)
}

func registrationScope(session models.Session) string {
	return fmt.Sprintf("regno_%s", session)
}

// NextRegistrationNumber reserves the next registration number for a
// session. Must be called inside the admission transaction so the counter
// row lock serializes concurrent admissions.
func NextRegistrationNumber(tx *sql.Tx, session models.Session) (string, error) {
	scan := `SELECT registration_no FROM enrollments WHERE session = $1 AND deleted_at IS NULL`
	return nextInScope(tx, registrationScope(session), RegistrationSeed, scan, string(session))
}

// ReserveRegistrationNumber raises a session's counter to cover a number
// carried in from an earlier session, so the issuer never hands the same
// number to a fresh admission. Non-numeric carries reserve nothing.
func ReserveRegistrationNumber(tx *sql.Tx, session models.Session, regNo string) error {
	n, ok := reserveValue(regNo)
	if !ok {
		return nil
	}
	_, err := tx.Exec(`INSERT INTO id_counters (scope, value) VALUES ($1, $2)
			  ON CONFLICT (scope) DO UPDATE SET value = GREATEST(id_counters.value, EXCLUDED.value)`,
		registrationScope(session), n)
	return err
}

// reserveValue parses an identifier for counter reservation.
func reserveValue(id string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextRollNumber reserves the next roll number for a class within a
// session.
func NextRollNumber(tx *sql.Tx, session models.Session, classID string) (string, error) {
	scope := fmt.Sprintf("rollno_%s_%s", session, classID)
	scan := `SELECT roll_number FROM enrollments WHERE session = $1 AND class_id = $2 AND deleted_at IS NULL`
	return nextInScope(tx, scope, RollNumberSeed, scan, string(session), classID)
}

// nextInScope increments the scope's counter row under a row lock. On
// first use the counter is seeded from a scan of the existing rows, so
// databases created before the counter table stay consistent.
func nextInScope(tx *sql.Tx, scope string, seed int, scanQuery string, args ...interface{}) (string, error) {
	var current int64
	err := tx.QueryRow(`SELECT value FROM id_counters WHERE scope = $1 FOR UPDATE`, scope).Scan(&current)
	if err == sql.ErrNoRows {
		existing, err := scanIdentifiers(tx, scanQuery, args...)
		if err != nil {
			return "", err
		}
		next := NextIdentifier(existing, seed)
		n, err := strconv.ParseInt(next, 10, 64)
		if err != nil {
			return "", err
		}
		if _, err := tx.Exec(`INSERT INTO id_counters (scope, value) VALUES ($1, $2)`, scope, n); err != nil {
			return "", err
		}
		return next, nil
	}
	if err != nil {
		return "", err
	}

	next := current + 1
	if _, err := tx.Exec(`UPDATE id_counters SET value = $2 WHERE scope = $1`, scope, next); err != nil {
		return "", err
	}
	return strconv.FormatInt(next, 10), nil
}

func scanIdentifiers(tx *sql.Tx, query string, args ...interface{}) ([]string, error) {
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Printf("scanIdentifiers: %v", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
