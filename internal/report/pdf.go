package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// pdfColumnWidths are in millimetres and fill a landscape A4 page inside
// 10mm margins (277mm).
var pdfColumnWidths = []float64{50, 35, 30, 35, 35, 40, 52}

// WritePDF renders rows as a landscape A4 table, the document the operator
// prints. Numbers are shown with grouped digits.
func WritePDF(w io.Writer, rows []domain.ExportRow, meta Meta) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := meta.Title
	if title == "" {
		title = "Caravan Weight Log"
	}
	pdf.SetTitle(title, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 224, 192)
		for i, h := range headers {
			pdf.CellFormat(pdfColumnWidths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
	}

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", meta.Generated.Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	summary := fmt.Sprintf("Total entries: %d", len(rows))
	if meta.Term != "" {
		summary = fmt.Sprintf("Showing %d result(s) for %q", len(rows), meta.Term)
	}
	pdf.CellFormat(0, 6, tr(summary), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	header()

	if len(rows) == 0 {
		msg := "Add entries to populate the caravan table."
		if meta.Term != "" {
			msg = "No matching records found."
		}
		pdf.CellFormat(0, 8, msg, "1", 1, "C", false, 0, "")
	}

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, r := range rows {
		if pdf.GetY()+7 > pageHeight-bottom-12 {
			pdf.AddPage()
			header()
		}
		check := r.CheckNumber
		if check == "" {
			check = "-"
		}
		cells := []struct {
			text  string
			align string
		}{
			{tr(r.PlateNumber), "L"},
			{GroupDigits(r.WithLoadKg), "R"},
			{r.Date, "C"},
			{GroupDigits(r.WithoutLoadKg), "R"},
			{GroupDigits(r.NetWeightKg), "R"},
			{GroupDigits(r.Price), "R"},
			{tr(check), "L"},
		}
		for i, c := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 7, c.text, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report.WritePDF: %w", err)
	}
	return nil
}
