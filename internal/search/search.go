// Package search implements entry filtering and match highlighting.
// Every function here is pure: terms are passed in already normalized and
// nothing is cached between calls.
package search

import (
	"strings"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// Normalize trims and lowercases a raw search term.
// An empty result means search is inactive.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Blob joins the searchable fields of e in fixed order, separated by single
// spaces, lowercased. Numbers use their plain decimal form.
func Blob(e domain.Entry) string {
	return strings.ToLower(strings.Join([]string{
		e.PlateNumber,
		e.DateString(),
		domain.FormatNumber(e.Price),
		domain.FormatNumber(e.WithLoadKg),
		domain.FormatNumber(e.WithoutLoadKg),
		domain.FormatNumber(e.NetWeightKg),
		e.CheckNumber,
	}, " "))
}

// Matches reports whether normalizedTerm occurs anywhere in e's blob.
// An empty term matches nothing.
func Matches(e domain.Entry, normalizedTerm string) bool {
	if normalizedTerm == "" {
		return false
	}
	return strings.Contains(Blob(e), normalizedTerm)
}

// FilteredList returns entries unchanged when the term is empty, otherwise a
// new slice holding only the matching entries in their original order.
func FilteredList(entries []domain.Entry, normalizedTerm string) []domain.Entry {
	if normalizedTerm == "" {
		return entries
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, normalizedTerm) {
			out = append(out, e)
		}
	}
	return out
}
