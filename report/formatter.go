// Package report renders the booking ledger for export: a fixed-width text
// table shared by the PDF report, and the CSV export format. Callers pass
// bookings in the order they want them printed; the formatter does not sort.
package report

import (
	"fmt"
	"io"

	"hotel-desk/models"
)

const customerWidth = 25

// HeaderLine is the fixed-width column header of the ledger table.
func HeaderLine() string {
	return fmt.Sprintf("%-10s %-25s %-12s", "Room", "Customer", "Date")
}

// RowLine renders one booking as a fixed-width table row. Customer names
// longer than 25 characters are truncated with a trailing ellipsis.
func RowLine(b models.Booking) string {
	return fmt.Sprintf("%-10d %-25s %-12s", b.RoomNumber, truncate(b.Customer, customerWidth), b.DateString())
}

// Table renders the header followed by one row per booking.
func Table(bookings []models.Booking) []string {
	lines := make([]string, 0, len(bookings)+1)
	lines = append(lines, HeaderLine())
	for _, b := range bookings {
		lines = append(lines, RowLine(b))
	}
	return lines
}

// WriteCSV writes the booking export: a `room,customer,date` header line,
// then one line per booking in the order given. Like the data files, values
// are not quoted or escaped.
func WriteCSV(w io.Writer, bookings []models.Booking) error {
	if _, err := io.WriteString(w, "room,customer,date\n"); err != nil {
		return err
	}
	for _, b := range bookings {
		line := fmt.Sprintf("%d,%s,%s\n", b.RoomNumber, b.Customer, b.DateString())
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
