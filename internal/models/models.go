package models

import (
	"time"

	"gorm.io/gorm"
)

// Lead statuses. A lead is stored before notification is attempted, so
// every stored lead starts as StatusNew.
const (
	StatusNew          = "new"
	StatusNotified     = "notified"
	StatusNotifyFailed = "notify_failed"
)

// ContactSubmission is a lead sent through the contact form
type ContactSubmission struct {
	ID          uint      `gorm:"primaryKey"`
	Reference   string    `gorm:"uniqueIndex;size:36;not null"` // shown to the visitor
	Name        string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:254;not null;index"`
	Phone       string    `gorm:"size:32"`
	Project     string    `gorm:"type:text"`
	RemoteIP    string    `gorm:"size:45"`
	UserAgent   string    `gorm:"size:512"`
	Status      string    `gorm:"size:16;not null;default:new;index"`
	NotifyError string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides for consistent naming
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// All returns every model for migration
func All() []interface{} {
	return []interface{}{
		&ContactSubmission{},
	}
}
