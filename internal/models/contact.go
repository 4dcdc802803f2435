package models

import "time"

// ContactMessage represents a contact form submission.
// Messages are immutable once stored; the database row is the durable
// record of truth, the Telegram notification is best-effort only.
type ContactMessage struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null"`
	Message  string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
