package main

import (
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/db"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func roomToView(r *models.Room, status types.RoomStatus) types.RoomView {
	view := types.RoomView{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		PricePerNight: r.PricePerNight,
		Status:        status,
		HotelID:       r.HotelID,
		RoomTypeID:    r.RoomTypeID,
	}
	if r.Hotel != nil {
		view.HotelName = r.Hotel.Name
	}
	if r.RoomType != nil {
		view.RoomType = r.RoomType.TypeName
		view.Capacity = r.RoomType.Capacity
		view.Description = r.RoomType.Description
	}
	return view
}

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rooms", func(ctx *gin.Context) {
			db := db.GetDb()
			var rooms []models.Room
			if err := db.
				Model(&models.Room{}).
				Preload("Hotel").
				Preload("RoomType").
				Preload("Bookings").
				Find(&rooms).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			today := time.Now()
			views := make([]types.RoomView, 0, len(rooms))
			for i := range rooms {
				status := common.DisplayStatus(&rooms[i], today)
				views = append(views, roomToView(&rooms[i], status))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": views, "count": len(views)})
		})
	return g
}

func roomSearchHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rooms/search-by-hotel/:hotelId", func(ctx *gin.Context) {
			var params struct {
				HotelID uint `uri:"hotelId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var query types.RoomSearchQuery
			if err := ctx.BindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var rooms []models.Room
			if err := db.
				Model(&models.Room{}).
				Where(&models.Room{HotelID: params.HotelID}).
				Preload("Hotel").
				Preload("RoomType").
				Preload("Bookings").
				Find(&rooms).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			// missing or unparsable dates degrade to all non-maintenance
			// rooms for the hotel
			rng := types.ParseDateRange(query.CheckIn, query.CheckOut)
			available := common.AvailableRooms(rooms, rng)
			views := make([]types.RoomView, 0, len(available))
			for i := range available {
				views = append(views, roomToView(&available[i], available[i].Status))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": views, "count": len(views)})
		})
	return g
}
