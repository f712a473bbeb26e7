package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func hotelSearchCacheKey(q *types.HotelSearchQuery) string {
	maxPrice := ""
	if q.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *q.MaxPrice)
	}
	minRating := ""
	if q.MinRating != nil {
		minRating = fmt.Sprintf("%.2f", *q.MinRating)
	}
	return fmt.Sprintf("hotels:search:%s:%s:%s:%s:%s:%s", q.Destination, q.CheckIn, q.CheckOut, maxPrice, minRating, q.SortBy)
}

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels/search", func(ctx *gin.Context) {
			var query types.HotelSearchQuery
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			cacheKey := hotelSearchCacheKey(&query)
			rd := lib.GetRedisClient()
			if rd != nil {
				if cached := rd.Get(context.Background(), cacheKey).Val(); cached != "" {
					var results []types.HotelSearchResult
					if err := json.Unmarshal([]byte(cached), &results); err == nil {
						ctx.JSON(http.StatusOK, gin.H{"data": results, "count": len(results)})
						return
					}
				}
			}

			db := db.GetDb()
			var hotels []models.Hotel
			if err := db.
				Model(&models.Hotel{}).
				Preload("Rooms").
				Preload("Rooms.Bookings").
				Preload("Reviews").
				Find(&hotels).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}

			results := common.SearchHotels(hotels, &query)

			if rd != nil {
				if payload, err := json.Marshal(results); err == nil {
					if err := rd.Set(context.Background(), cacheKey, payload, time.Minute).Err(); err != nil {
						log.Printf("Failed to cache search results: %s\n", err.Error())
					}
				}
			}

			ctx.JSON(http.StatusOK, gin.H{"data": results, "count": len(results)})
		})
	return g
}
