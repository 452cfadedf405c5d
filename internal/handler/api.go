package handler

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// Wire types for the JSON API. They mirror the schemas in spec/openapi.yaml.

// ErrorResponse is the envelope for every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one failure. Field names the draft input at fault,
// when there is one.
type ErrorDetail struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Field   *string `json:"field,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// SetFieldRequest is the body of PUT /draft/fields/{field}.
type SetFieldRequest struct {
	Value *string `json:"value"`
}

// Draft is the editable form as the client renders it.
type Draft struct {
	Input            domain.DraftInput `json:"input"`
	Editing          bool              `json:"editing"`
	EditingID        *uuid.UUID        `json:"editing_id,omitempty"`
	NetWeightPreview float64           `json:"net_weight_preview"`
}

// Entry is a committed weighing record.
type Entry struct {
	ID            uuid.UUID          `json:"id"`
	PlateNumber   string             `json:"plate_number"`
	WithLoadKg    float64            `json:"with_load_kg"`
	WithoutLoadKg float64            `json:"without_load_kg"`
	NetWeightKg   float64            `json:"net_weight_kg"`
	Date          openapi_types.Date `json:"date"`
	Price         float64            `json:"price"`
	CheckNumber   string             `json:"check_number"`
}

// ListingRow is one displayed entry; Highlights is omitted when no search is active.
type ListingRow struct {
	Entry      Entry                       `json:"entry"`
	Highlights map[string]domain.Highlight `json:"highlights,omitempty"`
}

// Listing is returned by GET /entries.
type Listing struct {
	Term   string       `json:"term"`
	Active bool         `json:"active"`
	Total  int          `json:"total"`
	Count  int          `json:"count"`
	Rows   []ListingRow `json:"rows"`
}

// DeleteResponse is returned by DELETE /entries/{id}.
type DeleteResponse struct {
	Deleted    bool `json:"deleted"`
	DraftReset bool `json:"draft_reset"`
}

// --- mapping helpers --------------------------------------------------------

func draftToResponse(v domain.DraftView) Draft {
	d := Draft{
		Input:            v.Input,
		Editing:          v.Editing(),
		NetWeightPreview: v.NetWeightPreview,
	}
	if v.EditingID != nil {
		id := *v.EditingID
		d.EditingID = &id
	}
	return d
}

func entryToResponse(e domain.Entry) Entry {
	return Entry{
		ID:            e.ID,
		PlateNumber:   e.PlateNumber,
		WithLoadKg:    e.WithLoadKg,
		WithoutLoadKg: e.WithoutLoadKg,
		NetWeightKg:   e.NetWeightKg,
		Date:          openapi_types.Date{Time: e.Date},
		Price:         e.Price,
		CheckNumber:   e.CheckNumber,
	}
}

func listingToResponse(l domain.Listing) Listing {
	rows := make([]ListingRow, 0, len(l.Rows))
	for _, r := range l.Rows {
		row := ListingRow{Entry: entryToResponse(r.Entry)}
		if len(r.Highlights) > 0 {
			row.Highlights = make(map[string]domain.Highlight, len(r.Highlights))
			for f, h := range r.Highlights {
				row.Highlights[string(f)] = h
			}
		}
		rows = append(rows, row)
	}
	return Listing{
		Term:   l.Term,
		Active: l.Active(),
		Total:  l.Total,
		Count:  len(rows),
		Rows:   rows,
	}
}
