package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

var pdfColumnWidths = []float64{28, 24, 24, 22, 92}

// WritePDF renders the rows as a titled table document.
func WritePDF(w io.Writer, title string, rows []Row, now time.Time) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Generado el: "+now.Format("02/01/2006"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(74, 111, 165)
	doc.SetTextColor(255, 255, 255)
	for i, header := range Headers {
		doc.CellFormat(pdfColumnWidths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row.cells() {
			doc.CellFormat(pdfColumnWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
