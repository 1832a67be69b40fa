package store

import (
	"sort"
	"sync"
	"time"

	"hotel-desk/models"
)

// RecordStore is the sole owner of application state: the room inventory and
// the booking ledger. All mutations go through it so the two invariants hold
// at all times: room numbers are unique, and no two bookings share the same
// (room, date) slot. An RWMutex guards both collections; HTTP handlers run
// concurrently and the check-then-insert in each mutator must be atomic for
// the invariants to survive parallel requests.
//
// Mutations are in-memory only. Persisting to the CSV files is an explicit,
// separate step performed by the caller after every successful mutation, so
// that the mutation logic stays testable without touching disk.
type RecordStore struct {
	mu       sync.RWMutex
	rooms    []models.Room
	bookings []models.Booking
}

// New returns an empty RecordStore.
func New() *RecordStore {
	return &RecordStore{}
}

// NewWithData returns a RecordStore seeded with the given collections,
// typically the result of loading the CSV files at startup. The slices are
// copied; the caller keeps no shared reference into the store.
func NewWithData(rooms []models.Room, bookings []models.Booking) *RecordStore {
	s := &RecordStore{
		rooms:    make([]models.Room, len(rooms)),
		bookings: make([]models.Booking, len(bookings)),
	}
	copy(s.rooms, rooms)
	copy(s.bookings, bookings)
	return s
}

// ListRooms returns a copy of the inventory ordered by room number.
func (s *RecordStore) ListRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// ListBookings returns a copy of the booking ledger. No order is implied;
// callers sort as needed.
func (s *RecordStore) ListBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// FindRoom returns the room with the given number, if present.
func (s *RecordStore) FindRoom(number int) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findRoom(number)
}

// HasBooking reports whether the (room, date) slot is occupied.
func (s *RecordStore) HasBooking(roomNumber int, date time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasBooking(roomNumber, date)
}

// AddRoom inserts a room, rejecting duplicates by number.
func (s *RecordStore) AddRoom(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findRoom(room.Number); ok {
		return ErrDuplicateRoom
	}
	s.rooms = append(s.rooms, room)
	return nil
}

// RemoveRoom deletes the room with the given number. With cascade, every
// booking referencing the room is deleted as well; without it, orphaned
// bookings remain in the ledger (a documented inconsistency, not auto-fixed).
func (s *RecordStore) RemoveRoom(number int, cascade bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, r := range s.rooms {
		if r.Number == number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrRoomNotFound
	}
	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)
	if cascade {
		kept := s.bookings[:0]
		for _, b := range s.bookings {
			if b.RoomNumber != number {
				kept = append(kept, b)
			}
		}
		s.bookings = kept
	}
	return nil
}

// AddBooking inserts a booking after checking that the room exists and the
// slot is free.
func (s *RecordStore) AddBooking(booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasBooking(booking.RoomNumber, booking.Date) {
		return ErrSlotTaken
	}
	if _, ok := s.findRoom(booking.RoomNumber); !ok {
		return ErrRoomNotFound
	}
	s.bookings = append(s.bookings, booking)
	return nil
}

// RemoveBooking deletes the single booking occupying the (room, date) slot.
func (s *RecordStore) RemoveBooking(roomNumber int, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.SameSlot(roomNumber, date) {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// findRoom and hasBooking are the lock-free lookups the exported methods and
// the mutators share; callers must hold mu.
func (s *RecordStore) findRoom(number int) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.Number == number {
			return r, true
		}
	}
	return models.Room{}, false
}

func (s *RecordStore) hasBooking(roomNumber int, date time.Time) bool {
	for _, b := range s.bookings {
		if b.SameSlot(roomNumber, date) {
			return true
		}
	}
	return false
}
