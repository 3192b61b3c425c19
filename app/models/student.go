package models

import "time"

// Student is the stable identity of a learner. Enrollment data that
// changes every session lives on Enrollment, not here.
type Student struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	FatherName   string     `json:"father_name"`
	MotherName   string     `json:"mother_name"`
	DateOfBirth  CustomDate `json:"date_of_birth"`
	Gender       Gender     `json:"gender" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female other"`
	Category     string     `json:"category"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	PhotoURL     string     `json:"photo_url"`
	ParentID     *string    `json:"parent_id,omitempty" gorm:"index;type:uuid"`
	Documents    []string   `json:"documents"` // names of documents received at admission
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Parent     *Parent     `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Enrollment *Enrollment `json:"enrollment,omitempty" gorm:"-"`
}

// Enrollment ties a student to a class for one session. Re-enrollment
// creates a new row referencing the same student; the registration number
// carries forward while the roll number is re-derived per class+session.
type Enrollment struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID        string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Session          Session    `json:"session" gorm:"not null;index;type:varchar(7)" validate:"required"`
	ClassID          string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RollNumber       string     `json:"roll_number" gorm:"not null"`
	RegistrationNo   string     `json:"registration_no" gorm:"not null;index"`
	Subjects         []string   `json:"subjects"`
	Promoted         bool       `json:"promoted" gorm:"default:false"`
	NextEnrollmentID *string    `json:"next_enrollment_id,omitempty" gorm:"type:uuid"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
