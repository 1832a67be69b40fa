package controllers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/report"
	"hotel-desk/services"
	"hotel-desk/utils"
)

type ExportController struct {
	Bookings *services.BookingService
}

func NewExportController(bookings *services.BookingService) *ExportController {
	return &ExportController{Bookings: bookings}
}

// ExportCSV handles GET /api/export/bookings.csv: a header line followed by
// one line per booking in store order.
func (ec *ExportController) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, ec.Bookings.List()); err != nil {
		log.Printf("export csv: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings_export.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportPDF handles GET /api/export/bookings.pdf: the "Bookings Report"
// document over the ledger sorted by date then room.
func (ec *ExportController) ExportPDF(c *gin.Context) {
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, ec.Bookings.Ledger()); err != nil {
		log.Printf("export pdf: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
