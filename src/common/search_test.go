package common

import (
	"testing"
	"time"

	"hms/src/models"
	"hms/src/types"

	"github.com/stretchr/testify/assert"
)

func searchFixtures() []models.Hotel {
	return []models.Hotel{
		{
			ID:   1,
			Name: "Harbor View",
			City: "Lisbon",
			Rooms: []models.Room{
				{ID: 1, Status: types.ROOM_AVAILABLE, PricePerNight: 120},
				{ID: 2, Status: types.ROOM_BOOKED, PricePerNight: 80},
			},
			Reviews: []models.Review{{Rating: 3}, {Rating: 5}},
		},
		{
			ID:   2,
			Name: "Alpine Lodge",
			City: "Innsbruck",
			Rooms: []models.Room{
				{ID: 3, Status: types.ROOM_AVAILABLE, PricePerNight: 200, Bookings: []models.Booking{
					{ID: 20, Status: types.BOOKING_CONFIRMED,
						CheckInDate:  time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
						CheckOutDate: time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)},
				}},
			},
			Reviews: []models.Review{{Rating: 5}},
		},
	}
}

func TestSearchHotelsByDestinationAndDates(t *testing.T) {
	hotels := searchFixtures()

	results := SearchHotels(hotels, &types.HotelSearchQuery{
		Destination: "Lisbon",
		CheckIn:     "2024-07-01",
		CheckOut:    "2024-07-03",
	})

	assert.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)
	// min price comes from the free room, not the operator-flagged one
	assert.Equal(t, 120.0, results[0].MinPrice)
	assert.Equal(t, 4.0, results[0].Rating)
}

func TestSearchHotelsDateConflictExcludesHotel(t *testing.T) {
	hotels := searchFixtures()

	results := SearchHotels(hotels, &types.HotelSearchQuery{
		CheckIn:  "2024-07-02",
		CheckOut: "2024-07-04",
	})

	assert.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)

	t.Run("touching boundary keeps the hotel", func(t *testing.T) {
		results := SearchHotels(hotels, &types.HotelSearchQuery{
			CheckIn:  "2024-07-10",
			CheckOut: "2024-07-12",
		})
		assert.Len(t, results, 2)
	})

	t.Run("cancelled bookings do not exclude", func(t *testing.T) {
		hotels := searchFixtures()
		hotels[1].Rooms[0].Bookings[0].Status = types.BOOKING_CANCELLED
		results := SearchHotels(hotels, &types.HotelSearchQuery{
			CheckIn:  "2024-07-02",
			CheckOut: "2024-07-04",
		})
		assert.Len(t, results, 2)
	})
}

func TestSearchHotelsInvalidDatesDegradeToUnfiltered(t *testing.T) {
	hotels := searchFixtures()

	results := SearchHotels(hotels, &types.HotelSearchQuery{
		CheckIn:  "07/02/2024",
		CheckOut: "2024-07-04",
	})

	assert.Len(t, results, 2)
}

func TestSearchHotelsRatingFilter(t *testing.T) {
	hotels := searchFixtures()
	minRating := 4.5

	results := SearchHotels(hotels, &types.HotelSearchQuery{MinRating: &minRating})

	assert.Len(t, results, 1)
	assert.Equal(t, uint(2), results[0].ID)
}

func TestSearchHotelsPriceFilter(t *testing.T) {
	hotels := searchFixtures()
	maxPrice := 150.0

	results := SearchHotels(hotels, &types.HotelSearchQuery{MaxPrice: &maxPrice})

	assert.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)

	t.Run("hotels without priced inventory survive the price filter", func(t *testing.T) {
		hotels := searchFixtures()
		hotels[1].Rooms[0].Status = types.ROOM_MAINTENANCE
		results := SearchHotels(hotels, &types.HotelSearchQuery{MaxPrice: &maxPrice})
		assert.Len(t, results, 2)
		for _, r := range results {
			if r.ID == 2 {
				assert.Equal(t, 0.0, r.MinPrice)
			}
		}
	})
}

func TestSearchHotelsSorting(t *testing.T) {
	hotels := searchFixtures()

	t.Run("default sorts by rating descending", func(t *testing.T) {
		results := SearchHotels(hotels, &types.HotelSearchQuery{})
		assert.Equal(t, uint(2), results[0].ID)
		assert.Equal(t, uint(1), results[1].ID)
	})

	t.Run("Price sorts by min price ascending", func(t *testing.T) {
		results := SearchHotels(hotels, &types.HotelSearchQuery{SortBy: "Price"})
		assert.Equal(t, uint(1), results[0].ID)
		assert.Equal(t, uint(2), results[1].ID)
	})
}
