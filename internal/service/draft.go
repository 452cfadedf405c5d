package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// DefaultBaselinePrice is the tariff a fresh draft starts with.
const DefaultBaselinePrice = 30000

// DraftEditor holds the single in-progress record. Fields are kept as raw
// text until Submit; nothing derived is stored.
//
// A DraftEditor is not safe for concurrent use.
type DraftEditor struct {
	input     domain.DraftInput
	editingID *uuid.UUID

	baselinePrice float64
	newID         func() uuid.UUID
	now           func() time.Time
}

// DraftOption configures a DraftEditor.
type DraftOption func(*DraftEditor)

// WithBaselinePrice sets the price a reset draft starts with.
func WithBaselinePrice(price float64) DraftOption {
	return func(d *DraftEditor) { d.baselinePrice = price }
}

// WithIDGenerator replaces uuid.New for new entries.
func WithIDGenerator(gen func() uuid.UUID) DraftOption {
	return func(d *DraftEditor) { d.newID = gen }
}

// WithClock replaces time.Now for the default date.
func WithClock(now func() time.Time) DraftOption {
	return func(d *DraftEditor) { d.now = now }
}

// NewDraftEditor returns an editor holding an empty "new" draft.
func NewDraftEditor(opts ...DraftOption) *DraftEditor {
	d := &DraftEditor{
		baselinePrice: DefaultBaselinePrice,
		newID:         uuid.New,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Reset()
	return d
}

// SetField replaces the raw text of one field. No validation happens here.
func (d *DraftEditor) SetField(f domain.Field, raw string) error {
	if !d.input.Set(f, raw) {
		_, err := domain.ParseField(string(f))
		return err
	}
	return nil
}

// NetWeightPreview is the net weight the current inputs would produce.
// It is 0 when either weight is not a finite number.
func (d *DraftEditor) NetWeightPreview() float64 {
	withLoad, ok1 := parseNumber(d.input.WithLoadKg)
	withoutLoad, ok2 := parseNumber(d.input.WithoutLoadKg)
	if !ok1 || !ok2 {
		return 0
	}
	return domain.NetWeight(withLoad, withoutLoad)
}

// BeginEdit seeds the draft from an existing entry; Submit will overwrite it.
func (d *DraftEditor) BeginEdit(e domain.Entry) {
	d.input = domain.DraftInput{
		PlateNumber:   e.PlateNumber,
		WithLoadKg:    domain.FormatNumber(e.WithLoadKg),
		WithoutLoadKg: domain.FormatNumber(e.WithoutLoadKg),
		Date:          e.DateString(),
		Price:         domain.FormatNumber(e.Price),
		CheckNumber:   e.CheckNumber,
	}
	id := e.ID
	d.editingID = &id
}

// Reset returns the draft to an empty "new" state dated today.
func (d *DraftEditor) Reset() {
	d.input = domain.DraftInput{
		Date:  d.today().Format(domain.DateLayout),
		Price: domain.FormatNumber(d.baselinePrice),
	}
	d.editingID = nil
}

// EditingID returns the ID of the entry being edited, if any.
func (d *DraftEditor) EditingID() (uuid.UUID, bool) {
	if d.editingID == nil {
		return uuid.Nil, false
	}
	return *d.editingID, true
}

// View returns a snapshot of the draft.
func (d *DraftEditor) View() domain.DraftView {
	v := domain.DraftView{
		Input:            d.input,
		NetWeightPreview: d.NetWeightPreview(),
	}
	if d.editingID != nil {
		id := *d.editingID
		v.EditingID = &id
	}
	return v
}

// Submit finalizes the draft. The plate number is the only required field;
// any number that does not parse becomes 0 and a bad date becomes today.
// On success the draft resets. On failure it is left untouched.
func (d *DraftEditor) Submit() (domain.Entry, error) {
	plate := strings.TrimSpace(d.input.PlateNumber)
	if plate == "" {
		return domain.Entry{}, &domain.ValidationError{
			Field:   domain.FieldPlateNumber,
			Message: "plate number is required",
		}
	}

	withLoad := coerceNumber(d.input.WithLoadKg)
	withoutLoad := coerceNumber(d.input.WithoutLoadKg)

	id, editing := d.EditingID()
	if !editing {
		id = d.newID()
	}

	entry := domain.Entry{
		ID:            id,
		PlateNumber:   plate,
		WithLoadKg:    withLoad,
		WithoutLoadKg: withoutLoad,
		NetWeightKg:   domain.NetWeight(withLoad, withoutLoad),
		Date:          d.parseDate(d.input.Date),
		Price:         coerceNumber(d.input.Price),
		CheckNumber:   strings.TrimSpace(d.input.CheckNumber),
	}

	d.Reset()
	return entry, nil
}

func (d *DraftEditor) today() time.Time {
	return domain.CalendarDay(d.now().UTC())
}

func (d *DraftEditor) parseDate(raw string) time.Time {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return d.today()
	}
	return t
}

// decimalNumber is the plain decimal form a weight or price may take:
// optional sign, digits with an optional fraction, optional exponent.
// Go literal extras such as digit separators and hex floats are not numbers here.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// integerPrefixes are the unsigned non-decimal integer forms the form input
// also accepts ("0x1F", "0o17", "0b101").
var integerPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// parseNumber parses raw as a finite float. Blank text counts as 0.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 {
		if base, ok := integerPrefixes[strings.ToLower(s[:2])]; ok {
			return parseInteger(s[2:], base)
		}
	}
	if !decimalNumber.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseInteger parses bare digits in base. Signs and separators are rejected.
func parseInteger(digits string, base int) (float64, bool) {
	if strings.ContainsAny(digits, "_+-") {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// coerceNumber is parseNumber with failures flattened to 0.
func coerceNumber(raw string) float64 {
	v, _ := parseNumber(raw)
	return v
}
