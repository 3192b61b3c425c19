package database

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"vidyalaya/app/models"
)

// ErrSalaryLocked is returned when a month that already has a salary
// record is paid again. Once written, the record is the permanent record.
var ErrSalaryLocked = errors.New("salary for this month is already paid and locked")

// MonthTally is the attendance breakdown a month's payroll is computed
// from. Holidays counts distinct non-working days (Sundays plus flagged
// holidays); the categories are not guaranteed to be disjoint from
// present/leave, so PaidDays may exceed DaysInMonth.
type MonthTally struct {
	DaysInMonth int `json:"days_in_month"`
	Present     int `json:"present"`
	Absent      int `json:"absent"`
	Leave       int `json:"leave"`
	Holidays    int `json:"holidays"`
}

// PaidDays is the day count credited under the attendance rule.
func (t MonthTally) PaidDays() int {
	return t.Present + t.Leave + t.Holidays
}

// PerDayRate divides the monthly salary over the month's calendar days.
func PerDayRate(monthlySalary int64, daysInMonth int) float64 {
	if daysInMonth == 0 {
		return 0
	}
	return float64(monthlySalary) / float64(daysInMonth)
}

// AttendancePayable computes the month's pay under the attendance rule:
// per-day rate times present + leave + holiday days.
func AttendancePayable(monthlySalary int64, t MonthTally) int64 {
	perDay := PerDayRate(monthlySalary, t.DaysInMonth)
	return int64(math.Round(float64(t.PaidDays()) * perDay))
}

// DeductionPayable computes the month's pay under the deduction rule:
// full salary minus an optional per-day cut for absent + leave days,
// plus manual adjustments (which may be negative).
func DeductionPayable(monthlySalary int64, t MonthTally, applyLeaveCut bool, adjustments int64) (payable, cut int64) {
	if applyLeaveCut {
		perDay := PerDayRate(monthlySalary, t.DaysInMonth)
		cut = int64(math.Round(float64(t.Absent+t.Leave) * perDay))
	}
	payable = int64(math.Round(float64(monthlySalary-cut) + float64(adjustments)))
	return payable, cut
}

// ComputePayable dispatches on the payroll mode.
func ComputePayable(mode models.PayrollMode, monthlySalary int64, t MonthTally, applyLeaveCut bool, adjustments int64) (payable, cut int64) {
	switch mode {
	case models.PayrollAttendance:
		return AttendancePayable(monthlySalary, t), 0
	default:
		return DeductionPayable(monthlySalary, t, applyLeaveCut, adjustments)
	}
}

// TallyTeacherMonth builds the attendance breakdown for one teacher and
// calendar month. Holiday days are the distinct dates that are a Sunday
// or carry a holiday flag.
func TallyTeacherMonth(db *sql.DB, teacherID string, year int, month time.Month) (MonthTally, error) {
	tally := MonthTally{DaysInMonth: models.DaysInMonth(year, month)}

	statuses, err := GetTeacherMonthAttendance(db, teacherID, year, month)
	if err != nil {
		return tally, err
	}
	for _, s := range statuses {
		switch s {
		case models.Present:
			tally.Present++
		case models.Absent:
			tally.Absent++
		case models.Leave:
			tally.Leave++
		}
	}

	holidayDays, err := HolidaysInMonth(db, year, month)
	if err != nil {
		return tally, err
	}
	for day := 1; day <= tally.DaysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		if d.Weekday() == time.Sunday || holidayDays[day] {
			tally.Holidays++
		}
	}

	return tally, nil
}

// GetSalaryRecord returns the persisted record for a teacher and month,
// or nil when the month is still open.
func GetSalaryRecord(db *sql.DB, teacherID string, year int, month time.Month) (*models.SalaryRecord, error) {
	r := &models.SalaryRecord{}
	var m int
	err := db.QueryRow(`SELECT id, teacher_id, session, year, month, mode, payable, paid, due, cut, adjustments, notes, paid_at, created_at
			  FROM salary_records WHERE teacher_id = $1 AND year = $2 AND month = $3`,
		teacherID, year, int(month)).Scan(
		&r.ID, &r.TeacherID, &r.Session, &r.Year, &m, &r.Mode, &r.Payable, &r.Paid,
		&r.Due, &r.Cut, &r.Adjustments, &r.Notes, &r.PaidAt, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.Month = time.Month(m)
	return r, nil
}

// PaySalary computes and persists one month's payout for a teacher. The
// month locks on write: a second call for the same teacher+month fails
// with ErrSalaryLocked and the stored amounts stand.
func PaySalary(db *sql.DB, teacher *models.Teacher, year int, month time.Month, mode models.PayrollMode, amountPaid int64, applyLeaveCut bool, adjustments int64, notes string) (*models.SalaryRecord, error) {
	tally, err := TallyTeacherMonth(db, teacher.ID, year, month)
	if err != nil {
		return nil, err
	}
	payable, cut := ComputePayable(mode, teacher.MonthlySalary, tally, applyLeaveCut, adjustments)

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM salary_records WHERE teacher_id = $1 AND year = $2 AND month = $3)`,
		teacher.ID, year, int(month)).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSalaryLocked
	}

	now := time.Now()
	record := &models.SalaryRecord{
		TeacherID:   teacher.ID,
		Session:     teacher.Session,
		Year:        year,
		Month:       month,
		Mode:        mode,
		Payable:     payable,
		Paid:        amountPaid,
		Due:         payable - amountPaid,
		Cut:         cut,
		Adjustments: adjustments,
		Notes:       notes,
		PaidAt:      &now,
	}
	err = tx.QueryRow(`INSERT INTO salary_records (teacher_id, session, year, month, mode, payable, paid, due, cut, adjustments, notes, paid_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at`,
		record.TeacherID, record.Session, record.Year, int(record.Month), record.Mode,
		record.Payable, record.Paid, record.Due, record.Cut, record.Adjustments,
		record.Notes, record.PaidAt).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

// GetSalaryHistory lists a teacher's salary records, newest first.
func GetSalaryHistory(db *sql.DB, teacherID string) ([]*models.SalaryRecord, error) {
	rows, err := db.Query(`SELECT id, teacher_id, session, year, month, mode, payable, paid, due, cut, adjustments, notes, paid_at, created_at
			  FROM salary_records WHERE teacher_id = $1 ORDER BY year DESC, month DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SalaryRecord
	for rows.Next() {
		r := &models.SalaryRecord{}
		var m int
		err := rows.Scan(&r.ID, &r.TeacherID, &r.Session, &r.Year, &m, &r.Mode, &r.Payable,
			&r.Paid, &r.Due, &r.Cut, &r.Adjustments, &r.Notes, &r.PaidAt, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		r.Month = time.Month(m)
		records = append(records, r)
	}
	return records, rows.Err()
}
