package models

import "time"

// ExamResult is one student's result for one exam type within a session.
// A second entry for the same (enrollment, exam type, session) is rejected.
type ExamResult struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnrollmentID string    `json:"enrollment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Session      Session   `json:"session" gorm:"not null;type:varchar(7)" validate:"required"`
	ExamType     string    `json:"exam_type" gorm:"not null" validate:"required"` // e.g. "Half Yearly", "Annual"
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Rows       []SubjectMark `json:"rows" gorm:"foreignKey:ExamResultID;references:ID"`
	Enrollment *Enrollment   `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}

// SubjectMark is one subject row on a marksheet.
type SubjectMark struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExamResultID string `json:"exam_result_id" gorm:"not null;index;type:uuid"`
	Subject      string `json:"subject" gorm:"not null" validate:"required"`
	Total        int    `json:"total" gorm:"not null" validate:"gt=0"`
	Marks        int    `json:"marks" gorm:"not null" validate:"gte=0"`
}

// Obtained sums marks across all subject rows.
func (r *ExamResult) Obtained() (obtained, total int) {
	for _, row := range r.Rows {
		obtained += row.Marks
		total += row.Total
	}
	return obtained, total
}
