package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudioID        uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_studio_phone,priority:1"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name             string `gorm:"not null"`
	Phone            string `gorm:"not null;uniqueIndex:idx_studio_phone,priority:2"`
	Email            string
	Birthday         *time.Time
	StylePreferences string // preferred styles, placement notes, allergies
	Notes            string
	TotalVisits      int     `gorm:"default:0"`
	TotalSpent       float64 `gorm:"type:decimal(10,2);default:0.0"`
	LastVisit        *time.Time
	IsActive         bool `gorm:"default:true"`

	Appointments []Appointment `gorm:"foreignKey:ClientID"`

	gorm.Model
}
