package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"vidyalaya/app/models"
)

// ErrNoFeePlan is returned when a class has no fee plan configured yet.
var ErrNoFeePlan = errors.New("no fee plan configured for this class")

// AllocateLumpSum spreads a lump sum across monthly dues in order,
// capping each month at its due and carrying the remainder forward. The
// returned slice is parallel to monthlyDue; the sum of its entries never
// exceeds lump.
func AllocateLumpSum(monthlyDue []int64, lump int64) []int64 {
	allocated := make([]int64, len(monthlyDue))
	remaining := lump
	for i, due := range monthlyDue {
		if remaining <= 0 {
			break
		}
		amount := due
		if amount > remaining {
			amount = remaining
		}
		allocated[i] = amount
		remaining -= amount
	}
	return allocated
}

// BuildSessionFees creates the twelve monthly fee rows for an enrollment
// in session order (April first), with an optional admission-time lump
// sum already allocated.
func BuildSessionFees(session models.Session, enrollmentID string, schoolFee, transportFee, lumpSum int64) ([]models.StudentFee, error) {
	fees := make([]models.StudentFee, 0, 12)
	dues := make([]int64, 0, 12)
	for i, m := range models.SessionMonths {
		year, err := session.YearFor(m)
		if err != nil {
			return nil, err
		}
		fee := models.StudentFee{
			EnrollmentID: enrollmentID,
			Session:      session,
			MonthIndex:   i + 1,
			Month:        m,
			Year:         year,
			SchoolFee:    schoolFee,
			TransportFee: transportFee,
		}
		fees = append(fees, fee)
		dues = append(dues, fee.TotalDue())
	}

	for i, paid := range AllocateLumpSum(dues, lumpSum) {
		fees[i].Paid = paid
	}
	return fees, nil
}

// insertSessionFees persists admission-time fee rows inside the admission
// transaction.
func insertSessionFees(tx *sql.Tx, fees []models.StudentFee) error {
	for _, f := range fees {
		_, err := tx.Exec(`INSERT INTO student_fees (enrollment_id, session, month_index, month, year, school_fee, transport_fee, paid)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			f.EnrollmentID, f.Session, f.MonthIndex, int(f.Month), f.Year, f.SchoolFee, f.TransportFee, f.Paid)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetFeesByEnrollment returns an enrollment's twelve fee rows in session
// order.
func GetFeesByEnrollment(db *sql.DB, enrollmentID string) ([]*models.StudentFee, error) {
	rows, err := db.Query(`SELECT id, enrollment_id, session, month_index, month, year, school_fee, transport_fee, paid, created_at, updated_at
			  FROM student_fees WHERE enrollment_id = $1 ORDER BY month_index`, enrollmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.StudentFee
	for rows.Next() {
		f := &models.StudentFee{}
		var m int
		err := rows.Scan(&f.ID, &f.EnrollmentID, &f.Session, &f.MonthIndex, &m, &f.Year,
			&f.SchoolFee, &f.TransportFee, &f.Paid, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		f.Month = time.Month(m)
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// CollectFeePayment records a collection and spreads it over the
// enrollment's outstanding months, oldest first. When the office does
// not supply a receipt reference, one is generated.
func CollectFeePayment(db *sql.DB, enrollmentID string, amount int64, reference string, collectedBy string) (*models.FeePayment, error) {
	if reference == "" {
		reference = "RCPT-" + strings.ToUpper(uuid.NewString()[:8])
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id, school_fee + transport_fee - paid FROM student_fees
			  WHERE enrollment_id = $1 ORDER BY month_index FOR UPDATE`, enrollmentID)
	if err != nil {
		return nil, err
	}

	type monthDue struct {
		id  string
		due int64
	}
	var months []monthDue
	for rows.Next() {
		var m monthDue
		if err := rows.Scan(&m.id, &m.due); err != nil {
			rows.Close()
			return nil, err
		}
		months = append(months, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dues := make([]int64, len(months))
	for i, m := range months {
		if m.due > 0 {
			dues[i] = m.due
		}
	}
	for i, alloc := range AllocateLumpSum(dues, amount) {
		if alloc == 0 {
			continue
		}
		_, err = tx.Exec(`UPDATE student_fees SET paid = paid + $2, updated_at = NOW() WHERE id = $1`, months[i].id, alloc)
		if err != nil {
			return nil, err
		}
	}

	payment := &models.FeePayment{
		EnrollmentID: enrollmentID,
		Amount:       amount,
		Reference:    reference,
		CollectedBy:  &collectedBy,
		PaidAt:       time.Now(),
	}
	err = tx.QueryRow(`INSERT INTO fee_payments (enrollment_id, amount, reference, collected_by, paid_at)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		payment.EnrollmentID, payment.Amount, payment.Reference, collectedBy, payment.PaidAt).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetFeePlanByClass loads a class's fee plan with its heads.
func GetFeePlanByClass(db *sql.DB, classID string) (*models.FeePlan, error) {
	plan := &models.FeePlan{}
	err := db.QueryRow(`SELECT id, class_id, created_at, updated_at FROM fee_plans WHERE class_id = $1`, classID).
		Scan(&plan.ID, &plan.ClassID, &plan.CreatedAt, &plan.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNoFeePlan
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, fee_plan_id, head, amount FROM fee_plan_heads WHERE fee_plan_id = $1 ORDER BY head`, plan.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var h models.FeeHead
		if err := rows.Scan(&h.ID, &h.FeePlanID, &h.Head, &h.Amount); err != nil {
			return nil, err
		}
		plan.Heads = append(plan.Heads, h)
	}
	return plan, rows.Err()
}

// UpsertFeePlan replaces a class's fee plan heads.
func UpsertFeePlan(db *sql.DB, classID string, heads map[string]int64) (*models.FeePlan, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	plan := &models.FeePlan{ClassID: classID}
	err = tx.QueryRow(`INSERT INTO fee_plans (class_id) VALUES ($1)
			  ON CONFLICT (class_id) DO UPDATE SET updated_at = NOW()
			  RETURNING id, created_at, updated_at`, classID).
		Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`DELETE FROM fee_plan_heads WHERE fee_plan_id = $1`, plan.ID); err != nil {
		return nil, err
	}
	for head, amount := range heads {
		var h models.FeeHead
		h.FeePlanID = plan.ID
		h.Head = head
		h.Amount = amount
		err = tx.QueryRow(`INSERT INTO fee_plan_heads (fee_plan_id, head, amount) VALUES ($1, $2, $3) RETURNING id`,
			plan.ID, head, amount).Scan(&h.ID)
		if err != nil {
			return nil, err
		}
		plan.Heads = append(plan.Heads, h)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return plan, nil
}
