package models

import "time"

// Class represents a class/grade with an optional section.
type Class struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Section   string     `json:"section"`
	Position  int        `json:"position" gorm:"default:0"` // ordering for promotion (Class 1 -> Class 2)
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Subjects []string `json:"subjects,omitempty" gorm:"-"`
}

// FeePlan holds the per-head fee amounts for a class.
type FeePlan struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClassID   string     `json:"class_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Heads []FeeHead `json:"heads" gorm:"foreignKey:FeePlanID;references:ID"`
}

// FeeHead is one named amount within a fee plan (tuition, exam, sports...).
type FeeHead struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FeePlanID string `json:"fee_plan_id" gorm:"not null;index;type:uuid"`
	Head      string `json:"head" gorm:"not null" validate:"required"`
	Amount    int64  `json:"amount" gorm:"not null;type:bigint" validate:"gte=0"`
}

// MonthlyTotal sums all heads of the plan.
func (p *FeePlan) MonthlyTotal() int64 {
	var total int64
	for _, h := range p.Heads {
		total += h.Amount
	}
	return total
}
