package models

import "time"

// Notice is a notice-board entry. Holiday declarations and fee reminders
// create notices automatically; the rest are written by staff.
type Notice struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Session     Session    `json:"session" gorm:"not null;index;type:varchar(7)"`
	Title       string     `json:"title" gorm:"not null" validate:"required"`
	Body        string     `json:"body"`
	Kind        NoticeKind `json:"kind" gorm:"type:varchar(20);default:'general'"`
	PublishedOn time.Time  `json:"published_on" gorm:"not null;type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
