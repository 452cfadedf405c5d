// Package repo contains the entry store for the Caravan Weight Log.
// Entries live in process memory for the lifetime of the session; there is
// no persistence layer. No business logic lives here, only ordering and lookup.
package repo

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// EntryRepo defines the store operations for finalized entries.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
//
// Implementations are not safe for concurrent use; callers serialize access.
type EntryRepo interface {
	// Upsert replaces the entry with the same ID in place, keeping its position.
	// An unknown ID is inserted at the front (most-recent-first).
	Upsert(entry domain.Entry)

	// Delete removes the entry with the given ID and reports whether one was
	// removed. An absent ID is a no-op.
	Delete(id uuid.UUID) bool

	// Get retrieves a single entry by ID.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	Get(id uuid.UUID) (domain.Entry, error)

	// List returns a lazy, restartable read over the current ordering.
	// The sequence must not be held across further mutation.
	List() iter.Seq[domain.Entry]

	// Len returns the number of stored entries.
	Len() int

	// Clear drops every entry.
	Clear()
}

// memEntryRepo is the in-memory implementation of EntryRepo.
// entries holds the display order; index maps an ID to its slot in entries.
type memEntryRepo struct {
	entries []domain.Entry
	index   map[uuid.UUID]int
}

// NewMemoryEntryRepo constructs an empty in-memory EntryRepo.
func NewMemoryEntryRepo() EntryRepo {
	return &memEntryRepo{index: make(map[uuid.UUID]int)}
}

// Upsert replaces in place or prepends.
func (r *memEntryRepo) Upsert(entry domain.Entry) {
	if i, ok := r.index[entry.ID]; ok {
		r.entries[i] = entry
		return
	}
	r.entries = slices.Insert(r.entries, 0, entry)
	r.reindex(0)
}

// Delete removes the entry and shifts the slots of everything after it.
func (r *memEntryRepo) Delete(id uuid.UUID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	delete(r.index, id)
	r.reindex(i)
	return true
}

// Get returns a copy of the stored entry.
func (r *memEntryRepo) Get(id uuid.UUID) (domain.Entry, error) {
	i, ok := r.index[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.Get: %w", domain.ErrNotFound)
	}
	return r.entries[i], nil
}

// List yields entries in display order. Each call to the returned sequence
// starts again from the front.
func (r *memEntryRepo) List() iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

func (r *memEntryRepo) Len() int {
	return len(r.entries)
}

func (r *memEntryRepo) Clear() {
	r.entries = nil
	clear(r.index)
}

// reindex refreshes index slots from position from onwards.
func (r *memEntryRepo) reindex(from int) {
	for i := from; i < len(r.entries); i++ {
		r.index[r.entries[i].ID] = i
	}
}
