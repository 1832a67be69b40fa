package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/store"
)

// BookingService wraps the record store for the booking flows: taking a
// booking, cancelling one, and the read views the UI tabs were built on.
type BookingService struct {
	Store *store.RecordStore
	Files Files
}

func NewBookingService(s *store.RecordStore, files Files) *BookingService {
	return &BookingService{Store: s, Files: files}
}

// RoomAvailability is one row of the per-date availability view: a room,
// whether it is booked on the date, and by whom.
type RoomAvailability struct {
	Room     models.Room `json:"room"`
	Booked   bool        `json:"booked"`
	Customer string      `json:"customer,omitempty"`
}

// List returns the ledger in store order.
func (s *BookingService) List() []models.Booking {
	return s.Store.ListBookings()
}

// Ledger returns the bookings sorted by date, then room number — the order
// the admin view and both exports use.
func (s *BookingService) Ledger() []models.Booking {
	bookings := s.Store.ListBookings()
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Date.Equal(bookings[j].Date) {
			return bookings[i].Date.Before(bookings[j].Date)
		}
		return bookings[i].RoomNumber < bookings[j].RoomNumber
	})
	return bookings
}

// Availability reports, for every room in number order, whether it is booked
// on the given date.
func (s *BookingService) Availability(date time.Time) []RoomAvailability {
	bookings := s.Store.ListBookings()
	out := make([]RoomAvailability, 0)
	for _, room := range s.Store.ListRooms() {
		row := RoomAvailability{Room: room}
		for _, b := range bookings {
			if b.SameSlot(room.Number, date) {
				row.Booked = true
				row.Customer = b.Customer
				break
			}
		}
		out = append(out, row)
	}
	return out
}

// Create validates and inserts a booking, then rewrites bookings.csv.
func (s *BookingService) Create(booking models.Booking) error {
	booking.Customer = strings.TrimSpace(booking.Customer)
	if booking.Customer == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if !RoomExists(s.Store, booking.RoomNumber) {
		return store.ErrRoomNotFound
	}
	if !IsSlotAvailable(s.Store, booking.RoomNumber, booking.Date) {
		return store.ErrSlotTaken
	}
	if err := s.Store.AddBooking(booking); err != nil {
		return err
	}
	return s.Files.SaveBookings(s.Store)
}

// Cancel removes the booking in the (room, date) slot, then rewrites
// bookings.csv.
func (s *BookingService) Cancel(roomNumber int, date time.Time) error {
	if err := s.Store.RemoveBooking(roomNumber, date); err != nil {
		return err
	}
	return s.Files.SaveBookings(s.Store)
}
