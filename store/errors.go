// Package store owns the application's in-memory state: the authoritative
// collections of rooms and bookings, and the CSV codec that syncs them to
// disk. The sentinel errors below are reused across layers so that handlers
// can translate each failure into a specific user-facing message.
package store

import "errors"

// ErrDuplicateRoom is returned when a room with the same number already
// exists. Handlers should translate this into an HTTP 409 response.
var ErrDuplicateRoom = errors.New("room number already exists")

// ErrRoomNotFound is returned when an operation references a room number
// that is not in the inventory.
var ErrRoomNotFound = errors.New("room not found")

// ErrSlotTaken is returned when a booking already occupies the requested
// (room, date) slot. At most one booking per room per day.
var ErrSlotTaken = errors.New("room already booked for this date")

// ErrBookingNotFound is returned when no booking matches the given
// (room, date) pair.
var ErrBookingNotFound = errors.New("booking not found")
