// Package service contains the business logic for the Caravan Weight Log.
// LogbookService is the composition root of one session: it owns the draft
// editor and the entry store and coordinates them. No HTTP lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/caravan-log/backend/internal/domain"
	"github.com/pkordes/caravan-log/backend/internal/repo"
	"github.com/pkordes/caravan-log/backend/internal/search"
)

// LogbookService drives one operator session.
// Every method takes the session lock for its whole duration, so operations
// run to completion one at a time regardless of how many goroutines call in.
type LogbookService struct {
	mu      sync.Mutex
	entries repo.EntryRepo
	draft   *DraftEditor
	log     *slog.Logger
}

// NewLogbookService constructs a LogbookService over the given store and draft.
// A nil logger falls back to slog.Default().
func NewLogbookService(entries repo.EntryRepo, draft *DraftEditor, log *slog.Logger) *LogbookService {
	if log == nil {
		log = slog.Default()
	}
	return &LogbookService{entries: entries, draft: draft, log: log}
}

// Draft returns the current draft.
func (s *LogbookService) Draft(ctx context.Context) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.View()
}

// SetField updates one raw draft input and returns the refreshed draft,
// including the recomputed net weight preview.
func (s *LogbookService) SetField(ctx context.Context, field domain.Field, value string) (domain.DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.SetField(field, value); err != nil {
		return domain.DraftView{}, fmt.Errorf("service.LogbookService.SetField: %w", err)
	}
	return s.draft.View(), nil
}

// ResetDraft discards the draft, including any edit in progress.
func (s *LogbookService) ResetDraft(ctx context.Context) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Reset()
	return s.draft.View()
}

// Submit finalizes the draft into the store. created is false when an
// existing entry was overwritten in place. A validation failure leaves both the
// store and the draft unchanged.
func (s *LogbookService) Submit(ctx context.Context) (entry domain.Entry, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, editing := s.draft.EditingID()
	entry, err = s.draft.Submit()
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("service.LogbookService.Submit: %w", err)
	}

	s.entries.Upsert(entry)
	s.log.DebugContext(ctx, "entry saved",
		"entry_id", entry.ID,
		"created", !editing,
		"net_weight_kg", entry.NetWeightKg,
	)
	return entry, !editing, nil
}

// BeginEdit loads a stored entry into the draft.
// Returns domain.ErrNotFound if the id is unknown.
func (s *LogbookService) BeginEdit(ctx context.Context, id uuid.UUID) (domain.DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entries.Get(id)
	if err != nil {
		return domain.DraftView{}, fmt.Errorf("service.LogbookService.BeginEdit: %w", err)
	}
	s.draft.BeginEdit(e)
	return s.draft.View(), nil
}

// Delete removes an entry. Deleting the entry under edit also resets the
// draft. An unknown id is a no-op, not an error.
func (s *LogbookService) Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := domain.DeleteResult{Deleted: s.entries.Delete(id)}
	if editingID, ok := s.draft.EditingID(); ok && editingID == id {
		s.draft.Reset()
		res.DraftReset = true
	}

	s.log.DebugContext(ctx, "entry deleted",
		"entry_id", id,
		"deleted", res.Deleted,
		"draft_reset", res.DraftReset,
	)
	return res, nil
}

// List returns the rows to display for rawTerm. With an empty term every entry
// is listed and nothing is highlighted.
func (s *LogbookService) List(ctx context.Context, rawTerm string) (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := search.Normalize(rawTerm)
	all := slices.Collect(s.entries.List())
	shown := search.FilteredList(all, term)

	rows := make([]domain.ListingRow, 0, len(shown))
	for _, e := range shown {
		row := domain.ListingRow{Entry: e}
		if term != "" {
			row.Highlights = search.HighlightEntry(e, term)
		}
		rows = append(rows, row)
	}

	return domain.Listing{Term: term, Total: len(all), Rows: rows}, nil
}

// Reload starts the session over. Nothing outlives a reload, so the store is
// emptied and the draft reset.
func (s *LogbookService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := s.entries.Len()
	s.entries.Clear()
	s.draft.Reset()

	s.log.InfoContext(ctx, "session reloaded", "entries_dropped", dropped)
	return nil
}

// Count returns the number of stored entries.
func (s *LogbookService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}
