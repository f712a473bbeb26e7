package models

import (
	"time"

	"hms/src/types"
)

type Review struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	HotelID    uint      `json:"hotel_id,omitempty"`
	CustomerID uint      `json:"customer_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewDate time.Time `json:"review_date,omitempty"`

	Hotel    *Hotel    `gorm:"foreignKey:hotel_id" json:"-"`
	Customer *Customer `gorm:"foreignKey:customer_id" json:"customer,omitempty"`

	types.Timestamps
}
