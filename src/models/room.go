package models

import "hms/src/types"

// Room.Status is the operator-set administrative state. It is advisory for a
// specific date: date-based occupancy is always derived from Bookings, never
// read back from this column.
type Room struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	RoomNumber    string           `json:"room_number,omitempty"`
	HotelID       uint             `json:"hotel_id,omitempty"`
	RoomTypeID    uint             `json:"room_type_id,omitempty"`
	Status        types.RoomStatus `gorm:"default:'available'" json:"status,omitempty"`
	PricePerNight float64          `json:"price_per_night"`

	Hotel    *Hotel    `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`
	RoomType *RoomType `gorm:"foreignKey:room_type_id" json:"room_type,omitempty"`
	Bookings []Booking `gorm:"foreignKey:room_id" json:"bookings,omitempty"`

	types.Timestamps
}

type RoomType struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	TypeName    string `json:"type_name,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
	Description string `json:"description,omitempty"`

	types.Timestamps
}
