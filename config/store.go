package config

import (
	"log"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/store"
)

// OpenStore loads the record store from the CSV files under dataDir. When
// the inventory comes back empty the sample rooms are seeded and persisted,
// matching first-run behavior.
func OpenStore(dataDir string) (*store.RecordStore, services.Files, error) {
	files := services.NewFiles(dataDir)

	rooms, err := store.LoadRooms(files.RoomsPath())
	if err != nil {
		return nil, files, err
	}
	bookings, err := store.LoadBookings(files.BookingsPath())
	if err != nil {
		return nil, files, err
	}

	s := store.NewWithData(rooms, bookings)

	if len(rooms) == 0 {
		seed := []models.Room{
			{Number: 101, Type: "Single", Price: 1200.0},
			{Number: 102, Type: "Double", Price: 1800.0},
			{Number: 201, Type: "Deluxe", Price: 3000.0},
		}
		for _, r := range seed {
			if err := s.AddRoom(r); err != nil {
				return nil, files, err
			}
		}
		if err := files.SaveRooms(s); err != nil {
			return nil, files, err
		}
		log.Println("Default rooms seeded")
	}

	return s, files, nil
}
