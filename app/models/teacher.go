package models

import "time"

// Teacher represents a staff member on payroll for one session. Like
// student enrollments, session rollover creates a new row linked to the
// old one rather than mutating it.
type Teacher struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	Role           StaffRole  `json:"role" gorm:"type:varchar(20);default:'teacher'" validate:"omitempty,oneof=teacher other_staff"`
	Subject        string     `json:"subject"`
	MonthlySalary  int64      `json:"monthly_salary" gorm:"not null;type:bigint" validate:"gte=0"`
	Session        Session    `json:"session" gorm:"not null;index;type:varchar(7)" validate:"required"`
	ClassTeacherOf *string    `json:"class_teacher_of,omitempty" gorm:"type:uuid"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email" validate:"omitempty,email"`
	JoinedOn       CustomDate `json:"joined_on"`
	Promoted       bool       `json:"promoted" gorm:"default:false"`
	NextTeacherID  *string    `json:"next_teacher_id,omitempty" gorm:"type:uuid"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Class *Class `json:"class,omitempty" gorm:"foreignKey:ClassTeacherOf;references:ID"`
}

// SalaryRecord is the permanent record of one month's payout. A row with
// PaidAt set is locked: the persisted amounts are the record, and further
// writes for that teacher+month are rejected.
type SalaryRecord struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TeacherID   string      `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Session     Session     `json:"session" gorm:"not null;type:varchar(7)" validate:"required"`
	Year        int         `json:"year" gorm:"not null"`
	Month       time.Month  `json:"month" gorm:"not null"`
	Mode        PayrollMode `json:"mode" gorm:"type:varchar(20);not null"`
	Payable     int64       `json:"payable" gorm:"not null;type:bigint"`
	Paid        int64       `json:"paid" gorm:"not null;type:bigint"`
	Due         int64       `json:"due" gorm:"not null;type:bigint"`
	Cut         int64       `json:"cut" gorm:"type:bigint;default:0"`
	Adjustments int64       `json:"adjustments" gorm:"type:bigint;default:0"`
	Notes       string      `json:"notes"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

// IsLocked reports whether the month's payout is final.
func (r *SalaryRecord) IsLocked() bool {
	return r.PaidAt != nil
}
