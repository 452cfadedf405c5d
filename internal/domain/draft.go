package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Field names one editable input of the draft. The string value is the wire
// name used by the HTTP layer.
type Field string

const (
	FieldPlateNumber   Field = "plate_number"
	FieldWithLoadKg    Field = "with_load_kg"
	FieldWithoutLoadKg Field = "without_load_kg"
	FieldDate          Field = "date"
	FieldPrice         Field = "price"
	FieldCheckNumber   Field = "check_number"

	// FieldNetWeightKg is derived and never editable; it exists so display
	// code can address the net weight column alongside the others.
	FieldNetWeightKg Field = "net_weight_kg"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []Field{
	FieldPlateNumber,
	FieldWithLoadKg,
	FieldWithoutLoadKg,
	FieldDate,
	FieldPrice,
	FieldCheckNumber,
}

// ParseField maps a wire name onto an editable Field.
// The derived net weight is rejected: it cannot be set independently.
func ParseField(name string) (Field, error) {
	for _, f := range DraftFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", &ValidationError{Field: Field(name), Message: fmt.Sprintf("unknown draft field %q", name)}
}

// DraftInput holds the raw, unvalidated text of every editable field.
type DraftInput struct {
	PlateNumber   string `json:"plate_number"`
	WithLoadKg    string `json:"with_load_kg"`
	WithoutLoadKg string `json:"without_load_kg"`
	Date          string `json:"date"`
	Price         string `json:"price"`
	CheckNumber   string `json:"check_number"`
}

// Get returns the raw text of f. Unknown fields yield "".
func (d DraftInput) Get(f Field) string {
	switch f {
	case FieldPlateNumber:
		return d.PlateNumber
	case FieldWithLoadKg:
		return d.WithLoadKg
	case FieldWithoutLoadKg:
		return d.WithoutLoadKg
	case FieldDate:
		return d.Date
	case FieldPrice:
		return d.Price
	case FieldCheckNumber:
		return d.CheckNumber
	}
	return ""
}

// Set replaces the raw text of f. It reports false for fields that are not
// editable.
func (d *DraftInput) Set(f Field, raw string) bool {
	switch f {
	case FieldPlateNumber:
		d.PlateNumber = raw
	case FieldWithLoadKg:
		d.WithLoadKg = raw
	case FieldWithoutLoadKg:
		d.WithoutLoadKg = raw
	case FieldDate:
		d.Date = raw
	case FieldPrice:
		d.Price = raw
	case FieldCheckNumber:
		d.CheckNumber = raw
	default:
		return false
	}
	return true
}

// DraftView is a read-only snapshot of the draft for the presentation layer.
// EditingID is nil while a new entry is being composed.
type DraftView struct {
	Input            DraftInput
	EditingID        *uuid.UUID
	NetWeightPreview float64
}

// Editing reports whether the draft overwrites an existing entry on submit.
func (v DraftView) Editing() bool {
	return v.EditingID != nil
}
