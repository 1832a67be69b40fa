package services

import (
	"path/filepath"

	"hotel-desk/store"
)

// Files knows where the two CSV files live and rewrites them from store
// state. Every successful mutation is followed by exactly one save of the
// affected file; there is no batching and no journaling. On a save failure
// the in-memory store remains the source of truth and the caller may retry.
type Files struct {
	roomsPath    string
	bookingsPath string
}

// NewFiles places rooms.csv and bookings.csv under dataDir.
func NewFiles(dataDir string) Files {
	return Files{
		roomsPath:    filepath.Join(dataDir, "rooms.csv"),
		bookingsPath: filepath.Join(dataDir, "bookings.csv"),
	}
}

// SaveRooms rewrites rooms.csv from the store's inventory.
func (f Files) SaveRooms(s *store.RecordStore) error {
	return store.SaveRooms(f.roomsPath, s.ListRooms())
}

// SaveBookings rewrites bookings.csv from the store's ledger.
func (f Files) SaveBookings(s *store.RecordStore) error {
	return store.SaveBookings(f.bookingsPath, s.ListBookings())
}

// RoomsPath returns the rooms.csv location.
func (f Files) RoomsPath() string { return f.roomsPath }

// BookingsPath returns the bookings.csv location.
func (f Files) BookingsPath() string { return f.bookingsPath }
