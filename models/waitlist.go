package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Waitlist entry statuses
const (
	WaitlistNew       = "new"
	WaitlistContacted = "contacted"
	WaitlistConverted = "converted"
	WaitlistDiscarded = "discarded"
)

// WaitlistEntry is captured from the public marketing form without auth.
type WaitlistEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name             string `gorm:"not null"`
	Email            string
	Phone            string
	RequestedService string
	RequestedArtist  string
	Notes            string
	Status           string `gorm:"type:varchar(20);default:'new'"`

	gorm.Model
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
