// Package domain contains the core data types for the Caravan Weight Log.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, search, handler).
package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used for entry dates on the wire,
// in the draft, and in the search blob.
const DateLayout = "2006-01-02"

// Entry is a finalized weighbridge record.
// NetWeightKg is always NetWeight(WithLoadKg, WithoutLoadKg); it is never set
// on its own.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	PlateNumber   string    `json:"plate_number"`
	WithLoadKg    float64   `json:"with_load_kg"`
	WithoutLoadKg float64   `json:"without_load_kg"`
	NetWeightKg   float64   `json:"net_weight_kg"`
	Date          time.Time `json:"date"` // calendar day, UTC midnight
	Price         float64   `json:"price"`
	CheckNumber   string    `json:"check_number,omitempty"`
}

// NetWeight returns gross minus tare, floored at zero.
func NetWeight(withLoadKg, withoutLoadKg float64) float64 {
	return math.Max(withLoadKg-withoutLoadKg, 0)
}

// DateString returns the entry date as YYYY-MM-DD.
func (e Entry) DateString() string {
	return e.Date.Format(DateLayout)
}

// FormatNumber renders n the way the operator's browser prints numbers:
// plain decimals with no grouping or trailing zeros ("40000", "12.5"), and
// exponent form outside [1e-6, 1e21) ("1e+21", "1.5e-7").
func FormatNumber(n float64) string {
	if abs := math.Abs(n); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return exponentForm(n)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// exponentForm writes n as mantissa, "e", explicit sign and an exponent
// without zero padding.
func exponentForm(n float64) string {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// CalendarDay truncates t to midnight UTC of its own calendar day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
