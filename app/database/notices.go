package database

import (
	"database/sql"
	"time"

	"vidyalaya/app/models"
)

// CreateNotice publishes a notice-board entry.
func CreateNotice(db *sql.DB, n *models.Notice) error {
	if n.PublishedOn.IsZero() {
		n.PublishedOn = dateOnly(time.Now())
	}
	return db.QueryRow(`INSERT INTO notices (session, title, body, kind, published_on)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		n.Session, n.Title, n.Body, n.Kind, n.PublishedOn).
		Scan(&n.ID, &n.CreatedAt)
}

// GetNoticesBySession lists a session's notices, newest first.
func GetNoticesBySession(db *sql.DB, session models.Session, limit int) ([]*models.Notice, error) {
	rows, err := db.Query(`SELECT id, session, title, body, kind, published_on, created_at
			  FROM notices WHERE session = $1 AND deleted_at IS NULL
			  ORDER BY published_on DESC, created_at DESC LIMIT $2`, session, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		n := &models.Notice{}
		err := rows.Scan(&n.ID, &n.Session, &n.Title, &n.Body, &n.Kind, &n.PublishedOn, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// SoftDeleteNotice takes a notice off the board.
func SoftDeleteNotice(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE notices SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}
