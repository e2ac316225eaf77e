package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"perubus/internal/domain/models"
	"perubus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Data carries everything the printable boleto shows. It is filled from the
// confirmation, never fetched again.
type Data struct {
	TripID        int64
	RouteName     string
	DepartureDate string
	DepartureTime string
	BusPlate      string
	SeatLabels    []string
	Passengers    []models.Passenger
	Total         float64
}

const (
	pageTop    = 15.0
	pageBottom = 15.0
	pageHeight = 297.0 // A4 portrait, mm
	lineH      = 7.0
	titleH     = 12.0
)

type docLine struct {
	text  string
	style string
	size  float64
	h     float64
}

// BuildTicketPDF lays the ticket content out as one measured block, then
// paginates that block across as many A4 pages as it needs. Returns the PDF
// bytes and the generated file name.
func BuildTicketPDF(d Data) ([]byte, string, error) {
	number := ticketNumber(d.TripID)
	lines := contentLines(d, number)

	contentH := 0.0
	for _, l := range lines {
		contentH += l.h
	}
	usable := pageHeight - pageTop - pageBottom

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boleto "+number, false)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range Paginate(contentH, usable) {
		pdf.AddPage()
		y := pageTop + page.YOffset
		for _, l := range lines {
			// Only paint the slice of the block that falls on this page.
			if y+l.h > pageTop-lineH && y < pageHeight-pageBottom {
				pdf.SetFont("Helvetica", l.style, l.size)
				pdf.SetXY(10, y)
				pdf.Cell(0, l.h, l.text)
			}
			y += l.h
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), number + ".pdf", nil
}

func contentLines(d Data, number string) []docLine {
	body := func(text string) docLine { return docLine{text: text, size: 12, h: lineH} }
	bold := func(text string) docLine { return docLine{text: text, style: "B", size: 12, h: lineH} }

	lines := []docLine{
		{text: "PERU BUS - BOLETO DE VIAJE", style: "B", size: 18, h: titleH},
		body("Numero de boleto : " + number),
		body(fmt.Sprintf("Ruta             : %s", dash(d.RouteName))),
		body(fmt.Sprintf("Fecha / Hora     : %s %s", dash(d.DepartureDate), dash(d.DepartureTime))),
		body(fmt.Sprintf("Bus (placa)      : %s", dash(d.BusPlate))),
		body(fmt.Sprintf("Asientos         : %s", dash(strings.Join(d.SeatLabels, ", ")))),
		{h: lineH / 2},
		bold("Pasajeros:"),
	}

	for i, p := range d.Passengers {
		seat := ""
		if i < len(d.SeatLabels) {
			seat = d.SeatLabels[i]
		}
		lines = append(lines,
			bold(fmt.Sprintf("%d) %s %s - Asiento %s", i+1, p.FirstNames, p.LastNames, dash(seat))),
			body(fmt.Sprintf("   DNI: %s   Edad: %s", dash(p.DocumentID), dash(p.Age))),
		)
	}

	lines = append(lines,
		docLine{h: lineH / 2},
		docLine{text: "Total pagado: " + utils.FormatSoles(d.Total), style: "B", size: 14, h: lineH + 2},
		docLine{text: "Presente este boleto al abordar. Valido solo para la fecha indicada.", style: "I", size: 10, h: lineH},
	)
	return lines
}

// ticketNumber builds the downloadable file's identifier from the trip and
// the last six digits of a millisecond timestamp.
func ticketNumber(tripID int64) string {
	ts := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("T-%d-%06d", tripID, ts)
}

func dash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
