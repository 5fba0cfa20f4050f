package export

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"wayfarer/expense"
	"wayfarer/itinerary"
	"wayfarer/present"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/trips/:tripid/export/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	entries, warnings, err := itinerary.Trips.Snapshot(tripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	destination, narrative, budgetText, _, _ := itinerary.Trips.Meta(tripID)
	themes := present.DayThemes(narrative)
	breakdown := expense.Aggregate(entries, budgetText)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, destination, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	for _, group := range present.GroupByDay(entries) {
		heading := group.Day
		if theme, ok := themes[group.Day]; ok {
			heading = fmt.Sprintf("%s: %s", group.Day, theme)
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, heading, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, e := range group.Entries {
			line := e.Name
			if e.Time != "" {
				line = fmt.Sprintf("%s  %s", e.Time, e.Name)
			}
			if e.Cost != "" {
				line = fmt.Sprintf("%s (%s)", line, e.Cost)
			}
			pdf.MultiCell(0, 7, line, "", "L", false)
		}

		for _, warning := range warnings[group.Day] {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 6, "! "+warning, "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Budget", "T", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Lodging: %d   Food: %d   Activities: %d   Transport: %d   Reserve: %d",
		breakdown.Lodging, breakdown.Food, breakdown.Activity, breakdown.Transport, breakdown.Reserve,
	), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+tripID+".pdf")
	w.Write(buf.Bytes())
}

// GET /api/trips/:tripid/share/qr
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	if _, err := itinerary.Trips.Epoch(tripID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	base := os.Getenv("SHARE_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	link := fmt.Sprintf("%s/trips/%s", base, tripID)

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
