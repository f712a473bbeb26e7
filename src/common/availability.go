package common

import (
	"time"

	"hms/src/models"
	"hms/src/types"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one day. A stay ending on the day another
// begins does not overlap: checkout morning and check-in can fall on the
// same date.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict reports whether any booking in the slice blocks the candidate
// [start, end) interval. Cancelled bookings never block. excludeID skips the
// caller's own booking on update-in-place, pass 0 when creating.
func HasConflict(bookings []models.Booking, start, end time.Time, excludeID uint) bool {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.Status == types.BOOKING_CANCELLED {
			continue
		}
		if Overlaps(b.CheckInDate, b.CheckOutDate, start, end) {
			return true
		}
	}
	return false
}

// AvailableRooms filters a hotel's rooms down to the bookable set. Rooms
// under maintenance are always dropped. With no date range the full
// remaining set is returned unfiltered; with a range, any room holding a
// non-cancelled booking that overlaps it is dropped as well. Each room's
// Bookings must be preloaded.
func AvailableRooms(rooms []models.Room, rng *types.DateRange) []models.Room {
	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Status == types.ROOM_MAINTENANCE {
			continue
		}
		if rng != nil && HasConflict(r.Bookings, rng.Start, rng.End, 0) {
			continue
		}
		available = append(available, r)
	}
	return available
}

// DisplayStatus derives the room state shown on full listings for the given
// reference date. Maintenance passes through untouched; otherwise the room
// shows booked exactly when a confirmed booking's interval contains the
// reference date. Pure function of its inputs, the stored administrative
// status is never overwritten.
func DisplayStatus(room *models.Room, ref time.Time) types.RoomStatus {
	if room.Status == types.ROOM_MAINTENANCE {
		return types.ROOM_MAINTENANCE
	}
	day := ref.Truncate(24 * time.Hour)
	for _, b := range room.Bookings {
		if b.Status != types.BOOKING_CONFIRMED {
			continue
		}
		in := b.CheckInDate.Truncate(24 * time.Hour)
		out := b.CheckOutDate.Truncate(24 * time.Hour)
		if !in.After(day) && out.After(day) {
			return types.ROOM_BOOKED
		}
	}
	return types.ROOM_AVAILABLE
}
