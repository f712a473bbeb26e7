package models

import (
	"time"

	"hms/src/types"

	"github.com/google/uuid"
)

type Payment struct {
	ID          uint                `gorm:"primarykey" json:"id"`
	BookingID   uint                `json:"booking_id,omitempty"`
	Reference   *uuid.UUID          `gorm:"type:uuid" json:"reference,omitempty"`
	Amount      float64             `json:"amount"`
	Method      types.PaymentMethod `json:"method,omitempty"`
	Status      types.PaymentStatus `gorm:"default:'pending'" json:"status,omitempty"`
	PaymentDate *time.Time          `json:"payment_date,omitempty"`

	Booking *Booking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
