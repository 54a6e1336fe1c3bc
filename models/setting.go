package models

import "time"

// Setting is a key/value row driving site configuration (titles, social
// links, feature toggles). Keys are unique among rows that are not
// soft-deleted; UpdatedAt doubles as the last-modified timestamp.
type Setting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"not null;index" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	Category  string    `gorm:"not null;index" json:"category"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
