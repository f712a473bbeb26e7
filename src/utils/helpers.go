package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomUnavailable = errors.New("room unavailable for the selected dates")
	ErrInvalidStay     = errors.New("check-in date must be before check-out date")
	ErrUnknownStatus   = errors.New("unknown booking status")
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, id uint) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Email: email,
		Role:  "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(id)),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func parseBookingStatus(s string) (types.BookingStatus, error) {
	switch types.BookingStatus(s) {
	case types.BOOKING_PENDING, types.BOOKING_CONFIRMED, types.BOOKING_CANCELLED, types.BOOKING_COMPLETED:
		return types.BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CreateBooking persists a new booking after the conflict check passes. The
// room row is locked for the duration of the transaction so a concurrent
// request for the same room serializes behind it: the check and the insert
// commit as one unit and two overlapping stays cannot both pass.
func CreateBooking(params *types.CreateBookingRequestBody) (*types.BookingView, error) {
	checkIn, err := time.Parse(types.DATE_PARSE_FORMAT, params.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(types.DATE_PARSE_FORMAT, params.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidStay
	}
	status := types.BOOKING_PENDING
	if params.Status != "" {
		status, err = parseBookingStatus(params.Status)
		if err != nil {
			return nil, err
		}
	}

	db := db.GetDb()
	var booking models.Booking
	err = db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&models.Room{}).
			Where(&models.Room{ID: params.RoomID}).
			First(&room).
			Error; err != nil {
			return err
		}
		var customer models.Customer
		if err := tx.
			Model(&models.Customer{}).
			Where(&models.Customer{ID: params.CustomerID}).
			First(&customer).
			Error; err != nil {
			return err
		}
		var existing []models.Booking
		if err := tx.
			Where(&models.Booking{RoomID: params.RoomID}).
			Find(&existing).
			Error; err != nil {
			return err
		}
		if common.HasConflict(existing, checkIn, checkOut, 0) {
			return ErrRoomUnavailable
		}
		ref := uuid.New()
		booking = models.Booking{
			Reference:    &ref,
			CustomerID:   params.CustomerID,
			RoomID:       params.RoomID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       status,
			TotalAmount:  float64(nights(checkIn, checkOut)) * room.PricePerNight,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("CreateBooking failed: %s\n", err.Error())
		return nil, err
	}

	go SendBookingConfirmation(booking.ID)

	return GetBookingView(booking.ID)
}

// UpdateBooking applies partial field replacement. Whenever the room or the
// stay dates change the conflict check runs again, excluding the booking's
// own id, under the same room lock as creation.
func UpdateBooking(id uint, params *types.UpdateBookingRequestBody) (*types.BookingView, error) {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			First(&booking).
			Error; err != nil {
			return err
		}

		checkIn := booking.CheckInDate
		checkOut := booking.CheckOutDate
		roomID := booking.RoomID
		if params.CheckInDate != nil {
			parsed, err := time.Parse(types.DATE_PARSE_FORMAT, *params.CheckInDate)
			if err != nil {
				return err
			}
			checkIn = parsed
		}
		if params.CheckOutDate != nil {
			parsed, err := time.Parse(types.DATE_PARSE_FORMAT, *params.CheckOutDate)
			if err != nil {
				return err
			}
			checkOut = parsed
		}
		if params.RoomID != nil {
			roomID = *params.RoomID
		}
		if !checkIn.Before(checkOut) {
			return ErrInvalidStay
		}

		stayChanged := roomID != booking.RoomID ||
			!checkIn.Equal(booking.CheckInDate) ||
			!checkOut.Equal(booking.CheckOutDate)
		if stayChanged {
			var room models.Room
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Model(&models.Room{}).
				Where(&models.Room{ID: roomID}).
				First(&room).
				Error; err != nil {
				return err
			}
			var existing []models.Booking
			if err := tx.
				Where(&models.Booking{RoomID: roomID}).
				Find(&existing).
				Error; err != nil {
				return err
			}
			if common.HasConflict(existing, checkIn, checkOut, booking.ID) {
				return ErrRoomUnavailable
			}
			booking.TotalAmount = float64(nights(checkIn, checkOut)) * room.PricePerNight
		}

		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
		booking.RoomID = roomID
		if params.CustomerID != nil {
			booking.CustomerID = *params.CustomerID
		}
		if params.Status != nil {
			status, err := parseBookingStatus(*params.Status)
			if err != nil {
				return err
			}
			booking.Status = status
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetBookingView(id)
}

// CancelBooking is update with status cancelled, plus flagging an attached
// unsettled payment as refunded in the same transaction.
func CancelBooking(id uint) (*types.BookingView, error) {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			First(&booking).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			Update("status", types.BOOKING_CANCELLED).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Payment{}).
			Where(&models.Payment{BookingID: id}).
			Where("status IN (?)", []types.PaymentStatus{types.PAYMENT_PENDING, types.PAYMENT_PAID}).
			Update("status", types.PAYMENT_REFUNDED).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetBookingView(id)
}

// DeleteBooking hard-deletes the row. No status semantics apply beyond the
// existence check.
func DeleteBooking(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			First(&booking).
			Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Booking{}, id).Error
	})
}

func GetBookingView(id uint) (*types.BookingView, error) {
	db := db.GetDb()
	var booking models.Booking
	if err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Preload("Customer").
		Preload("Room").
		First(&booking).
		Error; err != nil {
		return nil, err
	}
	view := bookingToView(&booking)
	return &view, nil
}

func bookingToView(booking *models.Booking) types.BookingView {
	view := types.BookingView{
		ID:           booking.ID,
		CustomerID:   booking.CustomerID,
		CustomerName: "N/A",
		RoomID:       booking.RoomID,
		RoomNumber:   "N/A",
		Status:       booking.Status,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		TotalAmount:  booking.TotalAmount,
	}
	if booking.Reference != nil {
		view.Reference = booking.Reference.String()
	}
	if booking.Customer != nil {
		view.CustomerName = booking.Customer.FullName
	}
	if booking.Room != nil {
		view.RoomNumber = booking.Room.RoomNumber
	}
	return view
}

func GetBookingViews() ([]types.BookingView, error) {
	db := db.GetDb()
	var bookings []models.Booking
	if err := db.
		Model(&models.Booking{}).
		Preload("Customer").
		Preload("Room").
		Order("created_at DESC").
		Find(&bookings).
		Error; err != nil {
		return nil, err
	}
	views := make([]types.BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, bookingToView(&bookings[i]))
	}
	return views, nil
}

// CompleteElapsedBookings promotes confirmed bookings whose stay has ended.
// Runs from the nightly scheduler job.
func CompleteElapsedBookings() {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.Booking{}).
			Where("status = ?", types.BOOKING_CONFIRMED).
			Where("check_out_date <= ?", time.Now()).
			Update("status", types.BOOKING_COMPLETED).
			Error
	})
	if err != nil {
		log.Printf("Error while completing elapsed bookings: %s\n", err.Error())
	}
}

// SendBookingConfirmation emails the customer. Best effort, failures only
// log.
func SendBookingConfirmation(bookingID uint) {
	db := db.GetDb()
	var booking models.Booking
	if err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		Preload("Customer").
		Preload("Room").
		Preload("Room.Hotel").
		First(&booking).
		Error; err != nil {
		log.Printf("Could not load Booking [%d] for confirmation mail: %s\n", bookingID, err.Error())
		return
	}
	if booking.Customer == nil || booking.Customer.Email == "" {
		return
	}
	hotelName := ""
	roomNumber := ""
	if booking.Room != nil {
		roomNumber = booking.Room.RoomNumber
		if booking.Room.Hotel != nil {
			hotelName = booking.Room.Hotel.Name
		}
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking at %s (room %s) from %s to %s has been received. Total: %.2f\n",
		booking.Customer.FullName,
		hotelName,
		roomNumber,
		booking.CheckInDate.Format(types.DATE_PARSE_FORMAT),
		booking.CheckOutDate.Format(types.DATE_PARSE_FORMAT),
		booking.TotalAmount,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Reservations",
		To:       []string{booking.Customer.Email},
		Subject:  fmt.Sprintf("Booking confirmation #%d", booking.ID),
		Body:     body,
	})
	if err != nil {
		log.Printf("Error sending confirmation for Booking [%d]: %s\n", bookingID, err.Error())
	}
}
