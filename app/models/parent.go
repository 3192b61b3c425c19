package models

import "time"

// Parent represents a guardian who may own several students.
type Parent struct {
	ID                string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name              string           `json:"name" gorm:"not null" validate:"required"`
	Relationship      RelationshipType `json:"relationship" gorm:"type:varchar(20);default:'guardian'"`
	Phone             string           `json:"phone" validate:"omitempty,len=10,numeric"`
	Email             string           `json:"email" validate:"omitempty,email"`
	Occupation        string           `json:"occupation"`
	Address           string           `json:"address"`
	NotificationToken string           `json:"notification_token,omitempty"`
	CreatedAt         time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Students []*Student `json:"students,omitempty" gorm:"foreignKey:ParentID;references:ID"`
}
