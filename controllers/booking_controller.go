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

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type bookingPayload struct {
	RoomNumber int    `json:"roomNumber"`
	Customer   string `json:"customer"`
	Date       string `json:"date"`
}

// GetBookings handles GET /api/bookings, returning the ledger sorted by
// date then room number.
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Bookings.Ledger())
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	date, err := time.Parse(models.DateLayout, payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid date %q, want %s", payload.Date, models.DateLayout))
		return
	}

	booking := models.Booking{RoomNumber: payload.RoomNumber, Customer: payload.Customer, Date: date}
	if err := bc.Bookings.Create(booking); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", payload.RoomNumber))
		case errors.Is(err, store.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room %d is already booked for %s", payload.RoomNumber, payload.Date))
		default:
			log.Printf("create booking room %d on %s: %v", payload.RoomNumber, payload.Date, err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to save booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// DeleteBooking handles DELETE /api/bookings/:number/:date, cancelling the
// booking occupying that slot.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}
	date, err := time.Parse(models.DateLayout, c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid date %q, want %s", c.Param("date"), models.DateLayout))
		return
	}

	if err := bc.Bookings.Cancel(number, date); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("cancel booking room %d on %s: %v", number, c.Param("date"), err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"canceled": true})
}
