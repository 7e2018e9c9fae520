package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type ExportServiceInterface interface {
	RenderPDF(itinerary response_models.Itinerary) ([]byte, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// RenderPDF lays the itinerary out on A4 pages: overview, one block per day
// and the travel tips.
func (e *ExportService) RenderPDF(itinerary response_models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr("Trip to "+itinerary.Destination), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, tr(itinerary.Duration+" | Total "+itinerary.TotalCost), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(35)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value, cost string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(35, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(110, 6, tr(truncate(value, 70)), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(25, 6, tr(cost), "", 1, "R", false, 0, "")
	}

	if f := itinerary.Flight; f != nil {
		sectionHeader("Flight")
		row("Airline", fmt.Sprintf("%s %s, departs %s", f.Airline, f.FlightNumber, f.Departure), f.Price)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(170, 5, "Airfare is shown for reference and is not part of the daily totals.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	for i, day := range itinerary.Days {
		title := fmt.Sprintf("Day %d - %s", i+1, day.Date)
		if day.Weather != nil {
			title += fmt.Sprintf(" (%s, %.0f-%.0f C)", day.Weather.Condition, day.Weather.MinTempC, day.Weather.MaxTempC)
		}
		sectionHeader(title)
		row("Stay", day.Accommodation.Name, day.Accommodation.Cost)
		row("Transport", day.Transportation.Type, day.Transportation.Cost)
		for _, a := range day.Activities {
			row(capitalize(a.Category), a.Name+" ("+a.Duration+")", a.Cost)
		}
		for _, a := range day.AlternativeActivities {
			row("Alternative", a.Name, a.Cost)
		}

		pdf.SetFillColor(212, 168, 67)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(145, 7, "Day total", "", 0, "L", true, 0, "")
		pdf.CellFormat(25, 7, utils.FormatCurrency(DayCost(day)), "", 1, "R", true, 0, "")
		pdf.Ln(4)
	}

	if len(itinerary.TravelTips) > 0 {
		sectionHeader("Travel tips")
		pdf.SetFont("Helvetica", "", 10)
		for _, tip := range itinerary.TravelTips {
			pdf.MultiCell(170, 5, tr("- "+tip), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
