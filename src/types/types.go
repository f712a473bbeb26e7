package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type RoomStatus string

const (
	ROOM_AVAILABLE   RoomStatus = "available"
	ROOM_BOOKED      RoomStatus = "booked"
	ROOM_MAINTENANCE RoomStatus = "maintenance"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
)

type PaymentStatus string

const (
	PAYMENT_PENDING  PaymentStatus = "pending"
	PAYMENT_PAID     PaymentStatus = "paid"
	PAYMENT_FAILED   PaymentStatus = "failed"
	PAYMENT_REFUNDED PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PAYMENT_CASH   PaymentMethod = "cash"
	PAYMENT_CARD   PaymentMethod = "card"
	PAYMENT_ONLINE PaymentMethod = "online"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateBookingRequestBody struct {
	CustomerID   uint   `json:"customer_id" binding:"required"`
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required,bookingdate"`
	CheckOutDate string `json:"check_out_date" binding:"required,bookingdate,gtdate=CheckInDate"`
	Status       string `json:"status,omitempty"`
}

type UpdateBookingRequestBody struct {
	Status       *string `json:"status,omitempty"`
	CheckInDate  *string `json:"check_in_date,omitempty" binding:"omitempty,bookingdate"`
	CheckOutDate *string `json:"check_out_date,omitempty" binding:"omitempty,bookingdate"`
	RoomID       *uint   `json:"room_id,omitempty"`
	CustomerID   *uint   `json:"customer_id,omitempty"`
}

type HotelSearchQuery struct {
	Destination string   `form:"destination"`
	CheckIn     string   `form:"checkIn"`
	CheckOut    string   `form:"checkOut"`
	MaxPrice    *float64 `form:"maxPrice"`
	MinRating   *float64 `form:"minRating"`
	SortBy      string   `form:"sortBy"`
}

type RoomSearchQuery struct {
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
}

// DateRange is a validated half-open [Start, End) interval. A nil *DateRange
// means "no date filter": availability paths degrade to unfiltered results
// when dates are missing or unparsable instead of erroring.
type DateRange struct {
	Start time.Time
	End   time.Time
}

const DATE_PARSE_FORMAT = "2006-01-02"

func ParseDateRange(checkIn, checkOut string) *DateRange {
	start, err := time.Parse(DATE_PARSE_FORMAT, checkIn)
	if err != nil {
		return nil
	}
	end, err := time.Parse(DATE_PARSE_FORMAT, checkOut)
	if err != nil {
		return nil
	}
	return &DateRange{Start: start, End: end}
}

type BookingView struct {
	ID           uint          `json:"id"`
	Reference    string        `json:"reference,omitempty"`
	CustomerID   uint          `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	RoomID       uint          `json:"room_id"`
	RoomNumber   string        `json:"room_number"`
	Status       BookingStatus `json:"status"`
	CheckInDate  time.Time     `json:"check_in_date"`
	CheckOutDate time.Time     `json:"check_out_date"`
	TotalAmount  float64       `json:"total_amount"`
}

type RoomView struct {
	ID            uint       `json:"id"`
	RoomNumber    string     `json:"room_number"`
	PricePerNight float64    `json:"price_per_night"`
	Status        RoomStatus `json:"status"`
	HotelID       uint       `json:"hotel_id"`
	HotelName     string     `json:"hotel_name"`
	RoomTypeID    uint       `json:"room_type_id"`
	RoomType      string     `json:"room_type"`
	Capacity      int        `json:"capacity"`
	Description   string     `json:"description,omitempty"`
}

type HotelSearchResult struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address,omitempty"`
	City     string  `json:"city,omitempty"`
	Country  string  `json:"country,omitempty"`
	Rating   float64 `json:"rating"`
	MinPrice float64 `json:"min_price"`
	ImageURL string  `json:"image_url,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
