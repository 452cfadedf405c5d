// Package report renders the printable view of the logbook.
// The same rows can be written as PDF (the default print output), CSV or XLSX.
package report

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// Format is an output format for a printed report.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value onto a Format. Blank means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Meta describes the report as a whole.
type Meta struct {
	Title     string
	Generated time.Time
	// Term is the normalized search term the rows were filtered by, if any.
	Term string
}

// Filename returns a download name such as caravan-log-20250314-1830.pdf.
func (m Meta) Filename(f Format) string {
	return fmt.Sprintf("caravan-log-%s.%s", m.Generated.Format("20060102-1504"), f)
}

// Write renders rows to w in format f.
func Write(w io.Writer, f Format, rows []domain.ExportRow, meta Meta) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows, meta)
	case FormatPDF:
		return WritePDF(w, rows, meta)
	}
	return fmt.Errorf("unsupported report format %q", f)
}

// GroupDigits renders n with thousands separators ("40,000", "12,500.5").
// It is used for display columns only; data columns keep the plain form.
func GroupDigits(n float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}

// headers lists the printed columns in table order.
var headers = []string{
	"Plate Number",
	"With Load (kg)",
	"Date",
	"Without Load (kg)",
	"Net Weight (kg)",
	"Price",
	"Check No.",
}
