package models

import "hms/src/types"

type Employee struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	HotelID  *uint  `json:"hotel_id,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
