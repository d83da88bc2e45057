package trip

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// core fonts are cp1252; arrows have no glyph there
var pdfText = strings.NewReplacer("→", "->", "×", "x")

// RenderPDF lays out a stored trip as a printable A4 itinerary.
func RenderPDF(t *types.Trip, generatedAt time.Time) ([]byte, error) {
	plan := t.TripData

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, text(plan.Destination), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel itinerary", "", 1, "L", false, 0, "")
	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, text(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, text(value), "", 1, "L", false, 0, "")
	}

	section("Trip Overview")
	row("Departure", plan.DepartureCity)
	row("Duration", plan.Duration)
	row("Travelers", plan.Travelers)
	row("Budget", fmt.Sprintf("$%.0f", t.Budget))
	if t.TravelStyle != "" {
		row("Style", string(t.TravelStyle))
	}
	row("Pricing", dataSourceLabel(plan.DataSource))
	pdf.Ln(4)

	a := plan.BudgetAllocation
	section("Budget Allocation")
	row("Flights", fmt.Sprintf("$%d", a.Flights))
	row("Accommodation", fmt.Sprintf("$%d", a.Accommodation))
	row("Activities", fmt.Sprintf("$%d", a.Activities))
	row("Food", fmt.Sprintf("$%d", a.Food))
	row("Transport", fmt.Sprintf("$%d", a.Transport))
	if a.OverBudget {
		row("Over budget by", fmt.Sprintf("$%d", a.Shortfall))
	}
	pdf.Ln(4)

	if len(plan.FlightOptions) > 0 {
		section("Flight Options")
		for _, f := range plan.FlightOptions {
			row(fmt.Sprintf("%s (%s)", f.Airline, f.Type), fmt.Sprintf("$%d per person, %s", f.Cost, f.Duration))
		}
		pdf.Ln(4)
	}

	if len(plan.AccommodationOptions) > 0 {
		section("Accommodation")
		for _, h := range plan.AccommodationOptions {
			row(h.Name, fmt.Sprintf("$%d, %s", h.Cost, h.Rating))
		}
		pdf.Ln(4)
	}

	if len(plan.Activities) > 0 {
		section("Daily Activities")
		for _, act := range plan.Activities {
			label := fmt.Sprintf("Day %d", act.Day)
			if act.Time != "" {
				label += ", " + strings.SplitN(act.Time, " ", 2)[0]
			}
			row(label, fmt.Sprintf("%s ($%d)", act.Title, act.Cost))
		}
		row("Total", fmt.Sprintf("$%d", plan.TotalActivitiesCost))
		pdf.Ln(4)
	}

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		text(fmt.Sprintf("Generated %s. Not a booking confirmation. Prices are estimates.", generatedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func dataSourceLabel(ds types.DataSource) string {
	if ds == types.DataSourceRealAPI {
		return "Live fares"
	}
	return "Estimated fares"
}
