package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a schedule as a day-by-day agenda document.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the agenda PDF. Each day gets a banner row followed by its
// sessions; incomplete markers are rendered in red.
func (e *PDFExporter) Render(schedule Schedule) ([]byte, error) {
	if len(schedule.Events) == 0 {
		return nil, fmt.Errorf("pdf requires at least one event")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 15, 12)
	pdf.AddPage()

	title := schedule.Title
	if title == "" {
		title = "Study Schedule"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, day := range schedule.days() {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s  %s", day.Day, day.Date), "", 1, "L", true, 0, "")

		for _, ev := range day.Events {
			if ev.Status == "incomplete" {
				pdf.SetTextColor(200, 30, 30)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.SetFont("Arial", "", 10)
			pdf.CellFormat(34, 7, fmt.Sprintf("%s-%s", ev.Start, ev.End), "", 0, "L", false, 0, "")
			pdf.CellFormat(118, 7, ev.Title, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%d min", ev.Duration), "", 1, "R", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d events total", len(schedule.Events)), "", 1, "R", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
