package search

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// DisplayFields lists the columns of a listing row in table order.
var DisplayFields = []domain.Field{
	domain.FieldPlateNumber,
	domain.FieldWithLoadKg,
	domain.FieldDate,
	domain.FieldWithoutLoadKg,
	domain.FieldNetWeightKg,
	domain.FieldPrice,
	domain.FieldCheckNumber,
}

// FieldText returns the plain string form of one displayed field of e.
func FieldText(e domain.Entry, f domain.Field) string {
	switch f {
	case domain.FieldPlateNumber:
		return e.PlateNumber
	case domain.FieldWithLoadKg:
		return domain.FormatNumber(e.WithLoadKg)
	case domain.FieldWithoutLoadKg:
		return domain.FormatNumber(e.WithoutLoadKg)
	case domain.FieldNetWeightKg:
		return domain.FormatNumber(e.NetWeightKg)
	case domain.FieldDate:
		return e.DateString()
	case domain.FieldPrice:
		return domain.FormatNumber(e.Price)
	case domain.FieldCheckNumber:
		return e.CheckNumber
	}
	return ""
}

// Highlight splits fieldText around the first case-insensitive occurrence of
// normalizedTerm. The split is display-only; the segments concatenate back to
// fieldText exactly.
func Highlight(fieldText, normalizedTerm string) domain.Highlight {
	start, end, ok := indexFold(fieldText, normalizedTerm)
	if !ok {
		return domain.Highlight{Prefix: fieldText}
	}
	return domain.Highlight{
		Prefix: fieldText[:start],
		Match:  fieldText[start:end],
		Suffix: fieldText[end:],
		Found:  true,
	}
}

// HighlightEntry highlights every displayed field of an already matched row.
// Fields that do not contain the term come back unhighlighted.
func HighlightEntry(e domain.Entry, normalizedTerm string) map[domain.Field]domain.Highlight {
	out := make(map[domain.Field]domain.Highlight, len(DisplayFields))
	for _, f := range DisplayFields {
		out[f] = Highlight(FieldText(e, f), normalizedTerm)
	}
	return out
}

// indexFold finds the byte span in text of the first run of runes whose
// lowercase forms equal the runes of the lowercase term.
func indexFold(text, term string) (start, end int, ok bool) {
	if term == "" {
		return 0, 0, false
	}
	for i := range text {
		j := i
		matched := true
		for _, tr := range term {
			if j >= len(text) {
				matched = false
				break
			}
			r, size := utf8.DecodeRuneInString(text[j:])
			if unicode.ToLower(r) != tr {
				matched = false
				break
			}
			j += size
		}
		if matched {
			return i, j, true
		}
	}
	return 0, 0, false
}
