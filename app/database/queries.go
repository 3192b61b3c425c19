package database

import (
	"database/sql"
	"time"

	"vidyalaya/app/models"
)

// --- users ---

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND deleted_at IS NULL`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND deleted_at IS NULL`, userID).
		Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func CreateUser(db *sql.DB, u *models.User) error {
	return db.QueryRow(`INSERT INTO users (email, password, first_name, last_name, role)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		u.Email, u.Password, u.FirstName, u.LastName, u.Role).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`, userID, hashedPassword)
	return err
}

// --- parents ---

func GetParentByID(db *sql.DB, id string) (*models.Parent, error) {
	p := &models.Parent{}
	err := db.QueryRow(`SELECT id, name, relationship, phone, email, occupation, address, notification_token, created_at, updated_at
			  FROM parents WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Relationship, &p.Phone, &p.Email, &p.Occupation, &p.Address, &p.NotificationToken, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func SearchParents(db *sql.DB, term string, limit int) ([]*models.Parent, error) {
	rows, err := db.Query(`SELECT id, name, relationship, phone, email, occupation, address, notification_token, created_at, updated_at
			  FROM parents WHERE name ILIKE '%' || $1 || '%' OR phone = $1
			  ORDER BY name LIMIT $2`, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []*models.Parent
	for rows.Next() {
		p := &models.Parent{}
		err := rows.Scan(&p.ID, &p.Name, &p.Relationship, &p.Phone, &p.Email, &p.Occupation,
			&p.Address, &p.NotificationToken, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}
	return parents, rows.Err()
}

// --- classes ---

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	rows, err := db.Query(`SELECT id, name, section, position, created_at, updated_at
			  FROM classes WHERE deleted_at IS NULL ORDER BY position, name, section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Section, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	err := db.QueryRow(`SELECT id, name, section, position, created_at, updated_at
			  FROM classes WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&c.ID, &c.Name, &c.Section, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func CreateClass(db *sql.DB, c *models.Class) error {
	return db.QueryRow(`INSERT INTO classes (name, section, position) VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`,
		c.Name, c.Section, c.Position).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	_, err := db.Exec(`UPDATE classes SET name = $2, section = $3, position = $4, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`,
		c.ID, c.Name, c.Section, c.Position)
	return err
}

func SoftDeleteClass(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE classes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}

// --- dashboard ---

// GetDashboardStats aggregates the landing-page counters for a session.
func GetDashboardStats(db *sql.DB, session models.Session, today time.Time) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var students, teachers, classes int
	if err := db.QueryRow(`SELECT COUNT(*) FROM enrollments WHERE session = $1 AND deleted_at IS NULL`, session).Scan(&students); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM teachers WHERE session = $1 AND deleted_at IS NULL`, session).Scan(&teachers); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM classes WHERE deleted_at IS NULL`).Scan(&classes); err != nil {
		return nil, err
	}
	stats["students"] = students
	stats["teachers"] = teachers
	stats["classes"] = classes

	var present, absent int
	err := db.QueryRow(`SELECT
			  COUNT(*) FILTER (WHERE sa.status = 'present'),
			  COUNT(*) FILTER (WHERE sa.status = 'absent')
			  FROM student_attendances sa
			  JOIN enrollments e ON sa.enrollment_id = e.id
			  WHERE e.session = $1 AND sa.date = $2`, session, dateOnly(today)).
		Scan(&present, &absent)
	if err != nil {
		return nil, err
	}
	stats["today_present"] = present
	stats["today_absent"] = absent

	var feeCollected sql.NullInt64
	err = db.QueryRow(`SELECT SUM(fp.amount) FROM fee_payments fp
			  JOIN enrollments e ON fp.enrollment_id = e.id
			  WHERE e.session = $1`, session).Scan(&feeCollected)
	if err != nil {
		return nil, err
	}
	stats["fees_collected"] = feeCollected.Int64

	return stats, nil
}
