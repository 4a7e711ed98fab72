package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/booking"
	"github.com/ukydev/trip-planner/internal/itinerary"
	"github.com/ukydev/trip-planner/internal/models"
	"github.com/ukydev/trip-planner/internal/weather"
)

// PDF writes a printable itinerary: one page per day, then a page of
// reservations with a QR code for each booking that has something to scan.
func PDF(w io.Writer, doc *models.TripDocument) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, day := range doc.Days {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Day %d - %s (%s)", i+1, day.Date, day.Weekday)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "I", 12)
		sub := day.Title
		if place, ok := weather.Lookup(day.LocationKey); ok {
			sub += " - " + place.Name
		}
		pdf.CellFormat(0, 8, tr(sub), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 11)
		conns := itinerary.Connectors(&day)
		for j, ev := range day.Events {
			line := fmt.Sprintf("%s  %s", ev.Time, ev.Title)
			if ev.Loc != "" {
				line += "  @ " + ev.Loc
			}
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
			if j < len(conns) && conns[j].Transit != nil {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, tr("      -> "+transitText(conns[j].Transit)), "", "L", false)
				pdf.SetFont("Arial", "", 11)
			}
		}
	}

	if len(doc.Reservations) > 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "Reservations", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		for _, r := range doc.Reservations {
			writeReservationPDF(pdf, tr, r)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

const qrSize = 30.0 // mm

func writeReservationPDF(pdf *gofpdf.Fpdf, tr func(string) string, r models.Reservation) {
	if pdf.GetY()+qrSize > 270 {
		pdf.AddPage()
	}
	top := pdf.GetY()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 7, tr(fmt.Sprintf("%s (%s)", r.Name, booking.StatusLabel(r.Status))), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 6, tr(fmt.Sprintf("%s  %s", r.Type, r.DateTime)), "", 1, "L", false, 0, "")
	if r.RefNumber != "" {
		pdf.CellFormat(140, 6, tr("Ref: "+r.RefNumber), "", 1, "L", false, 0, "")
	}

	if r.URL == "" && r.RefNumber == "" {
		pdf.Ln(4)
		return
	}
	png, err := booking.QRCode(r, 256)
	if err != nil {
		log.WithError(err).WithField("reservation", r.ID).Warn("Skipping QR code")
		pdf.Ln(4)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := "qr-" + r.ID
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, 165, top, qrSize, qrSize, false, opts, 0, "")
	pdf.SetY(top + qrSize + 4)
}
