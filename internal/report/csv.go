package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "plate_number", "with_load_kg", "date", "without_load_kg",
	"net_weight_kg", "price", "check_number",
}

// WriteCSV encodes rows as CSV. Numbers use their plain decimal form so the
// file round-trips through spreadsheets without locale surprises.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("report.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("report.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report.WriteCSV: %w", err)
	}
	return nil
}

func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.ID.String(),
		r.PlateNumber,
		domain.FormatNumber(r.WithLoadKg),
		r.Date,
		domain.FormatNumber(r.WithoutLoadKg),
		domain.FormatNumber(r.NetWeightKg),
		domain.FormatNumber(r.Price),
		r.CheckNumber,
	}
}
