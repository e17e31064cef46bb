package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Type     string    `gorm:"type:varchar(10);not null"` // income or expense
	Category string    `gorm:"default:'General'"`         // tattoo, supplies, rent, academy, ...
	Amount   float64   `gorm:"type:decimal(10,2);not null"`
	Date     time.Time `gorm:"index;default:CURRENT_TIMESTAMP"`

	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index"`

	PaymentMethod string
	Notes         string

	gorm.Model
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
