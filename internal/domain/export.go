package domain

import "github.com/google/uuid"

// ExportRow is a single row of the printable report.
// It is a flat copy of one displayed entry; numeric fields stay numeric so each
// output format can decide between plain and grouped rendering.
type ExportRow struct {
	ID            uuid.UUID
	PlateNumber   string
	WithLoadKg    float64
	WithoutLoadKg float64
	NetWeightKg   float64
	Date          string // "2006-01-02" formatted date
	Price         float64
	CheckNumber   string // empty when the entry has none
}

// NewExportRow flattens e into an ExportRow.
func NewExportRow(e Entry) ExportRow {
	return ExportRow{
		ID:            e.ID,
		PlateNumber:   e.PlateNumber,
		WithLoadKg:    e.WithLoadKg,
		WithoutLoadKg: e.WithoutLoadKg,
		NetWeightKg:   e.NetWeightKg,
		Date:          e.DateString(),
		Price:         e.Price,
		CheckNumber:   e.CheckNumber,
	}
}
