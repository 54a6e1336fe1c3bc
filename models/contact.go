package models

import "time"

// ContactSubmission is a message received through the public contact form.
// Identifier, read flag and submission time are always assigned server-side;
// caller-supplied values for them are discarded.
type ContactSubmission struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Subject     string    `gorm:"" json:"subject,omitempty"`
	Message     string    `gorm:"not null" json:"message"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
