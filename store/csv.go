package store

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-desk/models"
)

// The CSV files are headerless, comma-separated and carry no quoting or
// escaping of any kind. A field value containing a comma corrupts the file on
// save and misparses on load; this is a known limitation of the format, kept
// as-is rather than silently patched with quoting the files never had.
//
// Loading is permissive: blank lines and lines with fewer than three fields
// are skipped silently, and a line whose numeric or date field fails to parse
// is logged and skipped while the rest of the file still loads. A missing
// file is an empty collection, not an error. Saving rewrites the whole file
// by truncation; there is no incremental write.

// LoadRooms reads the room inventory from path, one `number,type,price` line
// per room.
func LoadRooms(path string) ([]models.Room, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var rooms []models.Room
	for _, ln := range lines {
		number, err := strconv.Atoi(ln.fields[0])
		if err != nil {
			log.Printf("rooms csv: skipping line %d: bad room number %q", ln.num, ln.fields[0])
			continue
		}
		price, err := strconv.ParseFloat(ln.fields[2], 64)
		if err != nil {
			log.Printf("rooms csv: skipping line %d: bad price %q", ln.num, ln.fields[2])
			continue
		}
		rooms = append(rooms, models.Room{Number: number, Type: ln.fields[1], Price: price})
	}
	return rooms, nil
}

// SaveRooms rewrites path with the full inventory. Prices render in their
// shortest exact decimal form, so saving the same data twice is
// byte-identical.
func SaveRooms(path string, rooms []models.Room) error {
	var sb strings.Builder
	for _, r := range rooms {
		sb.WriteString(strconv.Itoa(r.Number))
		sb.WriteByte(',')
		sb.WriteString(r.Type)
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(r.Price, 'f', -1, 64))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	return nil
}

// LoadBookings reads the booking ledger from path, one
// `roomNumber,customer,date` line per booking.
func LoadBookings(path string) ([]models.Booking, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	for _, ln := range lines {
		number, err := strconv.Atoi(ln.fields[0])
		if err != nil {
			log.Printf("bookings csv: skipping line %d: bad room number %q", ln.num, ln.fields[0])
			continue
		}
		date, err := time.Parse(models.DateLayout, ln.fields[2])
		if err != nil {
			log.Printf("bookings csv: skipping line %d: bad date %q", ln.num, ln.fields[2])
			continue
		}
		bookings = append(bookings, models.Booking{RoomNumber: number, Customer: ln.fields[1], Date: date})
	}
	return bookings, nil
}

// SaveBookings rewrites path with the full ledger.
func SaveBookings(path string, bookings []models.Booking) error {
	var sb strings.Builder
	for _, b := range bookings {
		sb.WriteString(strconv.Itoa(b.RoomNumber))
		sb.WriteByte(',')
		sb.WriteString(b.Customer)
		sb.WriteByte(',')
		sb.WriteString(b.DateString())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

type csvLine struct {
	num    int
	fields []string
}

// readLines returns the trimmed fields of every usable line: blank lines and
// lines with fewer than three fields are dropped here, before any parsing.
// Line numbers are the 1-based positions in the file, for log messages.
func readLines(path string) ([]csvLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var out []csvLine
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		fields := make([]string, len(parts))
		for j, p := range parts {
			fields[j] = strings.TrimSpace(p)
		}
		out = append(out, csvLine{num: i + 1, fields: fields})
	}
	return out, nil
}
