package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/store"
	"hotel-desk/utils"
)

type RoomController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings}
}

// GetRooms handles GET /api/rooms, returning the inventory in number order.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Rooms.List())
}

// GetAvailability handles GET /api/rooms/availability?date=2006-01-02,
// reporting each room's Booked/Available status on the date.
func (rc *RoomController) GetAvailability(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid date %q, want %s", raw, models.DateLayout))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Bookings.Availability(date))
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Rooms.Create(room); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrDuplicateRoom):
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room %d already exists", room.Number))
		default:
			log.Printf("create room %d: %v", room.Number, err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to save room")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}

// DeleteRoom handles DELETE /api/rooms/:number?cascade=true, removing a room
// and, when cascading, every booking that references it.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}
	cascade := c.Query("cascade") == "true"

	if err := rc.Rooms.Delete(number, cascade); err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", number))
			return
		}
		log.Printf("delete room %d: %v", number, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": number, "cascade": cascade})
}
