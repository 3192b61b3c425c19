package models

import "time"

// SchoolDetails is the singleton describing the school itself, used on
// every printed document header.
type SchoolDetails struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Affiliation string    `json:"affiliation"`
	LogoURL     string    `json:"logo_url"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SchoolRegistration is the cross-school registration/status record
// consulted at startup and by middleware; an inactive school is locked
// out of the application.
type SchoolRegistration struct {
	SchoolID     string    `json:"school_id" gorm:"primaryKey"`
	Status       string    `json:"status" gorm:"not null;default:'active'" validate:"oneof=active inactive"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// IsActive reports whether the school may use the application.
func (r *SchoolRegistration) IsActive() bool {
	return r.Status == "active"
}
