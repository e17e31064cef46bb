package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Studio is the tenant root; every other record hangs off a StudioID.
type Studio struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string
	Phone   string
	Email   string

	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'"`

	// Automation settings consumed by the reminder dispatcher
	EmailEnabled         bool   `gorm:"default:true"`
	AppointmentReminders bool   `gorm:"default:true"`
	ReviewRequests       bool   `gorm:"default:true"`
	SenderName           string
	ReplyTo              string

	Users        []User        `gorm:"foreignKey:StudioID"`
	Clients      []Client      `gorm:"foreignKey:StudioID"`
	Services     []Service     `gorm:"foreignKey:StudioID"`
	Appointments []Appointment `gorm:"foreignKey:StudioID"`
	Courses      []Course      `gorm:"foreignKey:StudioID"`

	gorm.Model
}

func (s *Studio) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// RemindersEnabled reports whether the dispatcher may send reminder email
// for this tenant. Both automation switches must be on.
func (s Studio) RemindersEnabled() bool {
	return s.EmailEnabled && s.AppointmentReminders
}

// Custom JSONB type for working hours and preference blobs
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
