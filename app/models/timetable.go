package models

import "time"

// Period is one slot in the daily timetable for a session.
type Period struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Session   Session    `json:"session" gorm:"not null;index;type:varchar(7)" validate:"required"`
	Label     string     `json:"label" gorm:"not null" validate:"required"` // "1st Period", "Lunch"
	StartTime string     `json:"start_time" validate:"required"`            // "09:30"
	EndTime   string     `json:"end_time" validate:"required"`
	Type      PeriodType `json:"type" gorm:"type:varchar(10);default:'class'" validate:"oneof=class break off"`
	Position  int        `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Assignments []PeriodAssignment `json:"assignments,omitempty" gorm:"foreignKey:PeriodID;references:ID"`
}

// PeriodAssignment maps a teacher to a class for one period. A teacher
// appears at most once per period.
type PeriodAssignment struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PeriodID  string `json:"period_id" gorm:"not null;index;type:uuid"`
	TeacherID string `json:"teacher_id" gorm:"not null;type:uuid"`
	ClassID   string `json:"class_id" gorm:"not null;type:uuid"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
