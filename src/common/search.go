package common

import (
	"sort"
	"strings"

	"hms/src/config"
	"hms/src/models"
	"hms/src/types"
)

// SearchHotels aggregates eager-loaded hotels (Rooms with Bookings, plus
// Reviews) into search results. Filtering, rating/price aggregation and
// sorting follow the listing rules:
//
//   - destination is a substring match against city or name
//   - with a date range, only hotels holding at least one administratively
//     available room free of non-cancelled overlapping bookings survive
//   - rating is the review average, 0 with no reviews
//   - min price is taken over the available-and-free rooms, 0 with none;
//     hotels with no priced inventory are not excluded by maxPrice
//   - sortBy "Price" sorts ascending by min price, anything else descending
//     by rating ("Recommended")
func SearchHotels(hotels []models.Hotel, query *types.HotelSearchQuery) []types.HotelSearchResult {
	rng := types.ParseDateRange(query.CheckIn, query.CheckOut)

	results := make([]types.HotelSearchResult, 0, len(hotels))
	for _, h := range hotels {
		if query.Destination != "" &&
			!strings.Contains(h.City, query.Destination) &&
			!strings.Contains(h.Name, query.Destination) {
			continue
		}

		free := freeRooms(h.Rooms, rng)
		if rng != nil && len(free) == 0 {
			continue
		}

		result := types.HotelSearchResult{
			ID:       h.ID,
			Name:     h.Name,
			Address:  h.Address,
			City:     h.City,
			Country:  h.Country,
			Rating:   averageRating(h.Reviews),
			MinPrice: minPrice(free),
			ImageURL: config.HOTEL_PLACEHOLDER_IMAGE_URL,
		}
		if query.MaxPrice != nil && result.MinPrice > 0 && result.MinPrice > *query.MaxPrice {
			continue
		}
		if query.MinRating != nil && result.Rating < *query.MinRating {
			continue
		}
		results = append(results, result)
	}

	if query.SortBy == "Price" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MinPrice < results[j].MinPrice
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	}
	return results
}

// freeRooms keeps rooms that are administratively available and, when a
// range is given, carry no non-cancelled overlapping booking. Unlike
// AvailableRooms this ignores rooms flagged booked by an operator, matching
// the stricter search policy.
func freeRooms(rooms []models.Room, rng *types.DateRange) []models.Room {
	free := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Status != types.ROOM_AVAILABLE {
			continue
		}
		if rng != nil && HasConflict(r.Bookings, rng.Start, rng.End, 0) {
			continue
		}
		free = append(free, r)
	}
	return free
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func minPrice(rooms []models.Room) float64 {
	if len(rooms) == 0 {
		return 0
	}
	min := rooms[0].PricePerNight
	for _, r := range rooms[1:] {
		if r.PricePerNight < min {
			min = r.PricePerNight
		}
	}
	return min
}
