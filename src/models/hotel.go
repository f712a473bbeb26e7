package models

import "hms/src/types"

type Hotel struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	Rooms     []Room     `gorm:"foreignKey:hotel_id" json:"rooms,omitempty"`
	Reviews   []Review   `gorm:"foreignKey:hotel_id" json:"reviews,omitempty"`
	Employees []Employee `gorm:"foreignKey:hotel_id" json:"employees,omitempty"`

	types.Timestamps
}
