package models

import (
	"time"

	"inkstudio-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
	StatusDeclined  = "declined"
)

type Appointment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID uuid.UUID `gorm:"type:uuid;index;not null"`
	ArtistID uuid.UUID `gorm:"type:uuid;index;not null"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceName string    `gorm:"not null"`
	StartTime   time.Time `gorm:"index;not null"`
	EndTime     time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);default:'pending'"`
	Notes       string
	Price       float64 `gorm:"type:decimal(10,2);default:0.0"`

	// Idempotency flags for the reminder dispatcher. Monotonic: once set they
	// are never reset, not even on reschedule.
	Reminder7dSent  bool `gorm:"default:false"`
	Reminder24hSent bool `gorm:"default:false"`

	Client Client `gorm:"foreignKey:ClientID"`
	Artist User   `gorm:"foreignKey:ArtistID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Canonical forward transitions of the appointment lifecycle. Staff may still
// force any status (all states stay editable), so this table describes validity
// rather than enforcing a hard guard.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusRejected:  {},
	StatusDeclined:  {},
}

func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether from -> to follows a canonical transition.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TriggersReviewRequest is true exactly when the change enters completed
// from a non-completed state.
func TriggersReviewRequest(from, to string) bool {
	return to == StatusCompleted && from != StatusCompleted
}

// IsVisibleStatus reports whether the calendar grid shows the appointment.
// Pending, cancelled, rejected and declined bookings stay off the grid.
func IsVisibleStatus(s string) bool {
	return s == StatusConfirmed || s == StatusCompleted
}

func VisibleStatuses() []string {
	return []string{StatusConfirmed, StatusCompleted}
}

// Overlaps reports whether the appointment intersects the half-open
// interval [start, end).
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return utils.IntervalsOverlap(a.StartTime, a.EndTime, start, end)
}
