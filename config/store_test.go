package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenStoreSeedsEmptyInventory(t *testing.T) {
	dir := t.TempDir()
	s, files, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}

	rooms := s.ListRooms()
	if len(rooms) != 3 {
		t.Fatalf("seeded %d rooms, want 3", len(rooms))
	}
	want := []int{101, 102, 201}
	for i, n := range want {
		if rooms[i].Number != n {
			t.Fatalf("rooms[%d].Number = %d, want %d", i, rooms[i].Number, n)
		}
	}

	// The seed is persisted, so a second open loads it instead of reseeding.
	data, err := os.ReadFile(files.RoomsPath())
	if err != nil {
		t.Fatalf("read rooms.csv: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("seeded rooms were not persisted")
	}

	again, _, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("second OpenStore: %v", err)
	}
	if len(again.ListRooms()) != 3 {
		t.Fatalf("reloaded %d rooms, want 3", len(again.ListRooms()))
	}
}

func TestOpenStoreKeepsExistingData(t *testing.T) {
	dir := t.TempDir()
	roomsCSV := "305,Penthouse,9000\n"
	bookingsCSV := "305,Alice,2024-05-01\n"
	if err := os.WriteFile(filepath.Join(dir, "rooms.csv"), []byte(roomsCSV), 0o644); err != nil {
		t.Fatalf("write rooms fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bookings.csv"), []byte(bookingsCSV), 0o644); err != nil {
		t.Fatalf("write bookings fixture: %v", err)
	}

	s, _, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	rooms := s.ListRooms()
	if len(rooms) != 1 || rooms[0].Number != 305 {
		t.Fatalf("rooms = %+v, want the single persisted room", rooms)
	}
	bookings := s.ListBookings()
	if len(bookings) != 1 || bookings[0].Customer != "Alice" {
		t.Fatalf("bookings = %+v, want the single persisted booking", bookings)
	}

	// Orphan tolerated: the booking's room can be absent entirely.
	if err := os.WriteFile(filepath.Join(dir, "rooms.csv"), []byte("400,Twin,2000\n"), 0o644); err != nil {
		t.Fatalf("rewrite rooms fixture: %v", err)
	}
	s, _, err = OpenStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if len(s.ListBookings()) != 1 {
		t.Fatal("orphaned booking dropped at load time")
	}
}
