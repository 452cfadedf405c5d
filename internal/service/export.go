package service

import (
	"context"
	"slices"

	"github.com/pkordes/caravan-log/backend/internal/domain"
	"github.com/pkordes/caravan-log/backend/internal/search"
)

// Export returns the rows a print of the current view would contain: every
// entry when rawTerm is blank, otherwise only the matching ones. Order follows
// the listing.
func (s *LogbookService) Export(ctx context.Context, rawTerm string) ([]domain.ExportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shown := search.FilteredList(slices.Collect(s.entries.List()), search.Normalize(rawTerm))

	rows := make([]domain.ExportRow, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, domain.NewExportRow(e))
	}
	return rows, nil
}
