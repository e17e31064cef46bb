package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	MaxStudents int  `gorm:"default:10"`
	IsActive    bool `gorm:"default:true"`

	Enrollments []Enrollment `gorm:"foreignKey:CourseID"`

	gorm.Model
}

func (c *Course) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

type Enrollment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID uuid.UUID `gorm:"type:uuid;index;not null"`
	CourseID uuid.UUID `gorm:"type:uuid;index;not null"`

	StudentName  string `gorm:"not null"`
	StudentEmail string
	StudentPhone string
	Status       string  `gorm:"type:varchar(20);default:'active'"`
	PaidAmount   float64 `gorm:"type:decimal(10,2);default:0.0"`

	AttendanceRecords []AttendanceRecord `gorm:"foreignKey:EnrollmentID"`

	gorm.Model
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

// One row per enrollment per session day; upserted by the attendance endpoint.
type AttendanceRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID     uuid.UUID `gorm:"type:uuid;index;not null"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_enrollment_session,priority:1"`
	SessionDate  time.Time `gorm:"not null;uniqueIndex:idx_enrollment_session,priority:2"`
	Present      bool      `gorm:"default:false"`

	gorm.Model
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
