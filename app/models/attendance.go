package models

import "time"

// StudentAttendance is one student's status for one date.
type StudentAttendance struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID string           `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date         time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status       AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent"`
	MarkedBy     *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Enrollment *Enrollment `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}

// TeacherAttendance is one staff member's status for one date.
type TeacherAttendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TeacherID string           `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent leave"`
	Remarks   string           `json:"remarks"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

// Holiday flags a date as non-attendance-eligible for the whole school.
// Once written it cannot be removed.
type Holiday struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Session   Session   `json:"session" gorm:"not null;index;type:varchar(7)"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex;type:date" validate:"required"`
	Reason    string    `json:"reason" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// AttendanceSummary holds a month's running present/absent counters for
// an enrollment. Maintained on every transition; must always equal a
// full recount of the month's rows.
type AttendanceSummary struct {
	EnrollmentID string     `json:"enrollment_id" gorm:"primaryKey;type:uuid"`
	Year         int        `json:"year" gorm:"primaryKey"`
	Month        time.Month `json:"month" gorm:"primaryKey"`
	Present      int        `json:"present" gorm:"not null;default:0"`
	Absent       int        `json:"absent" gorm:"not null;default:0"`
}
