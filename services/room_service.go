package services

import (
	"fmt"
	"strings"

	"hotel-desk/models"
	"hotel-desk/store"
)

// RoomService wraps the record store to keep the room-management logic in
// one place: validate, mutate, persist.
type RoomService struct {
	Store *store.RecordStore
	Files Files
}

func NewRoomService(s *store.RecordStore, files Files) *RoomService {
	return &RoomService{Store: s, Files: files}
}

// List returns the inventory ordered by room number.
func (s *RoomService) List() []models.Room {
	return s.Store.ListRooms()
}

// Create validates and inserts a room, then rewrites rooms.csv.
func (s *RoomService) Create(room models.Room) error {
	room.Type = strings.TrimSpace(room.Type)
	if room.Number <= 0 {
		return fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}
	if room.Type == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}
	if room.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if !IsRoomNumberFree(s.Store, room.Number) {
		return store.ErrDuplicateRoom
	}
	if err := s.Store.AddRoom(room); err != nil {
		return err
	}
	return s.Files.SaveRooms(s.Store)
}

// Delete removes a room, cascading to its bookings when asked to, then
// rewrites rooms.csv (and bookings.csv if the cascade ran).
func (s *RoomService) Delete(number int, cascade bool) error {
	if err := s.Store.RemoveRoom(number, cascade); err != nil {
		return err
	}
	if err := s.Files.SaveRooms(s.Store); err != nil {
		return err
	}
	if cascade {
		return s.Files.SaveBookings(s.Store)
	}
	return nil
}
