package models

import (
	"time"

	"hms/src/types"

	"github.com/google/uuid"
)

// Booking holds a half-open [CheckInDate, CheckOutDate) stay. For a fixed
// room no two bookings with status other than cancelled may overlap.
type Booking struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	Reference    *uuid.UUID          `gorm:"type:uuid" json:"reference,omitempty"`
	CustomerID   uint                `json:"customer_id,omitempty"`
	RoomID       uint                `json:"room_id,omitempty"`
	CheckInDate  time.Time           `json:"check_in_date"`
	CheckOutDate time.Time           `json:"check_out_date"`
	Status       types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	TotalAmount  float64             `json:"total_amount"`

	Customer *Customer `gorm:"foreignKey:customer_id" json:"customer,omitempty"`
	Room     *Room     `gorm:"foreignKey:room_id" json:"room,omitempty"`
	Payment  *Payment  `gorm:"foreignKey:booking_id" json:"payment,omitempty"`

	types.Timestamps
}
