// models/message_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageLog records every outbound reminder email and marketing message.
type MessageLog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	StudioID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	Type          string     `gorm:"type:varchar(20)"` // reminder_7d, reminder_24h, marketing
	Recipient     string
	Message       string `gorm:"type:text"`
	Status        string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage  string `gorm:"type:text"`
	Channel       string `gorm:"type:varchar(20)"` // email, sms, whatsapp
	SentAt        time.Time
	gorm.Model
}

func (m *MessageLog) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
