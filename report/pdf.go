package report

import (
	"io"

	"github.com/go-pdf/fpdf"

	"hotel-desk/models"
)

const (
	pdfMargin     = 50.0
	pdfBottom     = 60.0 // start a new page once the cursor drops past pageHeight - pdfBottom
	titleSize     = 14.0
	rowSize       = 10.0
	titleAdvance  = 25.0
	headerAdvance = 15.0
	rowAdvance    = 14.0
)

// WritePDF renders the "Bookings Report" document: a title, the fixed-width
// table header, and one row per booking. When the cursor runs out of
// vertical space a fresh page begins; the header is not repeated on
// continuation pages, a cosmetic limitation kept from the original layout.
func WritePDF(w io.Writer, bookings []models.Booking) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	y := pdfMargin
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.Text(pdfMargin, y, "Bookings Report")
	y += titleAdvance

	pdf.SetFont("Courier", "", rowSize)
	pdf.Text(pdfMargin, y, HeaderLine())
	y += headerAdvance

	for _, b := range bookings {
		if y > pageHeight-pdfBottom {
			pdf.AddPage()
			y = pdfMargin
			pdf.SetFont("Courier", "", rowSize)
		}
		pdf.Text(pdfMargin, y, RowLine(b))
		y += rowAdvance
	}

	return pdf.Output(w)
}
