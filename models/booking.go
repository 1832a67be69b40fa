package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar-date format used everywhere a booking date is
// rendered or parsed: CSV files, API payloads and report output.
const DateLayout = "2006-01-02"

// Booking reserves one room for one customer on one calendar date.
// RoomNumber is a soft reference: deleting a room without cascading leaves
// its bookings behind, and the load path tolerates them.
type Booking struct {
	RoomNumber int
	Customer   string
	Date       time.Time
}

// DateString renders the booking date in DateLayout form.
func (b Booking) DateString() string {
	return b.Date.Format(DateLayout)
}

// SameSlot reports whether the booking occupies the given (room, date) slot,
// the unit of booking exclusivity. Dates compare by calendar day only.
func (b Booking) SameSlot(roomNumber int, date time.Time) bool {
	return b.RoomNumber == roomNumber && b.DateString() == date.Format(DateLayout)
}

// MarshalJSON renders the date as a plain calendar string, not RFC 3339.
func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RoomNumber int    `json:"roomNumber"`
		Customer   string `json:"customer"`
		Date       string `json:"date"`
	}{b.RoomNumber, b.Customer, b.DateString()})
}
