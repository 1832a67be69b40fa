package services

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"hotel-desk/models"
	"hotel-desk/store"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func newRoomService(t *testing.T) *RoomService {
	t.Helper()
	return NewRoomService(store.New(), NewFiles(t.TempDir()))
}

func TestRoomCreatePersists(t *testing.T) {
	svc := newRoomService(t)
	if err := svc.Create(models.Room{Number: 101, Type: "Single", Price: 1200}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, err := os.ReadFile(svc.Files.RoomsPath())
	if err != nil {
		t.Fatalf("read rooms.csv: %v", err)
	}
	if got := string(data); got != "101,Single,1200\n" {
		t.Fatalf("rooms.csv = %q, want %q", got, "101,Single,1200\n")
	}
}

func TestRoomCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		room models.Room
	}{
		{"non-positive number", models.Room{Number: 0, Type: "Single", Price: 100}},
		{"empty type", models.Room{Number: 101, Type: "   ", Price: 100}},
		{"negative price", models.Room{Number: 101, Type: "Single", Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newRoomService(t)
			err := svc.Create(tc.room)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Create err = %v, want ErrInvalidInput", err)
			}
			if len(svc.List()) != 0 {
				t.Fatal("rejected room reached the store")
			}
		})
	}
}

func TestRoomCreateDuplicate(t *testing.T) {
	svc := newRoomService(t)
	if err := svc.Create(models.Room{Number: 101, Type: "Single", Price: 1200}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := svc.Create(models.Room{Number: 101, Type: "Double", Price: 900})
	if !errors.Is(err, store.ErrDuplicateRoom) {
		t.Fatalf("Create err = %v, want ErrDuplicateRoom", err)
	}
}

func TestRoomDeleteCascadePersistsBothFiles(t *testing.T) {
	s := store.New()
	files := NewFiles(t.TempDir())
	rooms := NewRoomService(s, files)
	bookings := NewBookingService(s, files)

	if err := rooms.Create(models.Room{Number: 101, Type: "Single", Price: 1200}); err != nil {
		t.Fatalf("Create room: %v", err)
	}
	if err := bookings.Create(models.Booking{RoomNumber: 101, Customer: "Alice", Date: date(t, "2024-05-01")}); err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	if err := rooms.Delete(101, true); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	roomData, err := os.ReadFile(files.RoomsPath())
	if err != nil {
		t.Fatalf("read rooms.csv: %v", err)
	}
	bookingData, err := os.ReadFile(files.BookingsPath())
	if err != nil {
		t.Fatalf("read bookings.csv: %v", err)
	}
	if strings.TrimSpace(string(roomData)) != "" {
		t.Fatalf("rooms.csv = %q, want empty", roomData)
	}
	if strings.TrimSpace(string(bookingData)) != "" {
		t.Fatalf("bookings.csv = %q, want empty after cascade", bookingData)
	}
}

func TestRoomDeleteWithoutCascadeLeavesLedgerFile(t *testing.T) {
	s := store.New()
	files := NewFiles(t.TempDir())
	rooms := NewRoomService(s, files)
	bookings := NewBookingService(s, files)

	if err := rooms.Create(models.Room{Number: 101, Type: "Single", Price: 1200}); err != nil {
		t.Fatalf("Create room: %v", err)
	}
	if err := bookings.Create(models.Booking{RoomNumber: 101, Customer: "Alice", Date: date(t, "2024-05-01")}); err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	if err := rooms.Delete(101, false); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	bookingData, err := os.ReadFile(files.BookingsPath())
	if err != nil {
		t.Fatalf("read bookings.csv: %v", err)
	}
	if got := string(bookingData); got != "101,Alice,2024-05-01\n" {
		t.Fatalf("bookings.csv = %q, orphaned booking should remain", got)
	}
}
