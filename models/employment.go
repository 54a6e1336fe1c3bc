package models

import "time"

// Employment represents one entry in the work history.
// EndDate is nil while the position is current.
type Employment struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Company          string     `gorm:"not null" json:"company"`
	Title            string     `gorm:"not null" json:"title"`
	StartDate        time.Time  `gorm:"not null" json:"start_date"`
	EndDate          *time.Time `gorm:"" json:"end_date,omitempty"`
	Responsibilities string     `gorm:"not null;default:'[]'" json:"-"` // JSON string array
	Achievements     string     `gorm:"not null;default:'[]'" json:"-"` // JSON string array
	Technologies     string     `gorm:"not null;default:'[]'" json:"-"` // JSON string array
	DisplayOrder     int        `gorm:"not null;default:0" json:"display_order"`
	IsDeleted        bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Employment) TableName() string {
	return "employment"
}
