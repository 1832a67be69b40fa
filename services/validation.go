// Package services holds the mutation flows and validation rules sitting
// between the HTTP controllers and the record store. Services validate,
// mutate the store, then immediately persist the affected CSV file; the
// store's own rejections stay authoritative, the predicates here exist so
// callers can surface a specific message before attempting the mutation.
package services

import (
	"errors"
	"time"

	"hotel-desk/store"
)

// ErrInvalidInput marks a request rejected before it reached the store:
// empty room type, non-positive room number and so on. Handlers translate
// it into an HTTP 400 response.
var ErrInvalidInput = errors.New("invalid input")

// IsRoomNumberFree reports whether no room in the store uses the number.
func IsRoomNumberFree(s *store.RecordStore, number int) bool {
	_, ok := s.FindRoom(number)
	return !ok
}

// RoomExists reports whether some room in the store has the number.
func RoomExists(s *store.RecordStore, number int) bool {
	_, ok := s.FindRoom(number)
	return ok
}

// IsSlotAvailable reports whether no booking occupies the (room, date) slot.
func IsSlotAvailable(s *store.RecordStore, roomNumber int, date time.Time) bool {
	return !s.HasBooking(roomNumber, date)
}
