package models

import "time"

// StudentFee is one month's fee row for an enrollment. Twelve rows are
// created at admission/readmission, one per session month in April–March
// order.
type StudentFee struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID string     `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Session      Session    `json:"session" gorm:"not null;type:varchar(7)"`
	MonthIndex   int        `json:"month_index" gorm:"not null" validate:"gte=1,lte=12"` // 1 = April ... 12 = March
	Month        time.Month `json:"month" gorm:"not null"`
	Year         int        `json:"year" gorm:"not null"`
	SchoolFee    int64      `json:"school_fee" gorm:"not null;type:bigint"`
	TransportFee int64      `json:"transport_fee" gorm:"type:bigint;default:0"`
	Paid         int64      `json:"paid" gorm:"type:bigint;default:0"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TotalDue returns the month's charge across both fee components.
func (f *StudentFee) TotalDue() int64 {
	return f.SchoolFee + f.TransportFee
}

// Outstanding returns what remains unpaid for the month.
func (f *StudentFee) Outstanding() int64 {
	return f.TotalDue() - f.Paid
}

// FeePayment records one collection event against an enrollment.
type FeePayment struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID string    `json:"enrollment_id" gorm:"not null;index;type:uuid"`
	Amount       int64     `json:"amount" gorm:"not null;type:bigint" validate:"gt=0"`
	Reference    string    `json:"reference"`
	CollectedBy  *string   `json:"collected_by,omitempty" gorm:"type:uuid"`
	PaidAt       time.Time `json:"paid_at" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
