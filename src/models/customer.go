package models

import "hms/src/types"

type Customer struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"-"`

	Bookings []Booking `gorm:"foreignKey:customer_id" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:customer_id" json:"reviews,omitempty"`

	types.Timestamps
}
