package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// sheetName is the single worksheet of an XLSX export.
const sheetName = "Caravan Entries"

// WriteXLSX writes rows as a one-sheet workbook. Weight and price cells hold
// numbers with a grouped display format, so spreadsheet sums keep working.
func WriteXLSX(w io.Writer, rows []domain.ExportRow, meta Meta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("report.WriteXLSX: rename sheet: %w", err)
	}
	if meta.Title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:   meta.Title,
			Created: meta.Generated.UTC().Format("2006-01-02T15:04:05Z"),
		}); err != nil {
			return fmt.Errorf("report.WriteXLSX: doc props: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F0E0C0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("report.WriteXLSX: header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return fmt.Errorf("report.WriteXLSX: number style: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("report.WriteXLSX: header: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("report.WriteXLSX: header style: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report.WriteXLSX: row %d: %w", i, err)
		}
		values := []any{
			r.PlateNumber,
			r.WithLoadKg,
			r.Date,
			r.WithoutLoadKg,
			r.NetWeightKg,
			r.Price,
			r.CheckNumber,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("report.WriteXLSX: row %d: %w", i, err)
		}
	}

	if len(rows) > 0 {
		last := len(rows) + 1
		for _, col := range []string{"B", "D", "E", "F"} {
			if err := f.SetCellStyle(sheetName, fmt.Sprintf("%s2", col), fmt.Sprintf("%s%d", col, last), numberStyle); err != nil {
				return fmt.Errorf("report.WriteXLSX: number style: %w", err)
			}
		}
	}
	if err := f.SetColWidth(sheetName, "A", "G", 18); err != nil {
		return fmt.Errorf("report.WriteXLSX: column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}
	return nil
}
