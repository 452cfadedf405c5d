// Package testutil provides shared fixtures for tests that need a populated
// logbook: a fixed clock, a sample entry, and a live service stack wired the
// same way cmd/api wires it.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/caravan-log/backend/internal/domain"
	"github.com/pkordes/caravan-log/backend/internal/repo"
	"github.com/pkordes/caravan-log/backend/internal/service"
)

// FixedNow is the wall clock every fixture agrees on: 2025-03-14 18:30 UTC.
var FixedNow = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

// Clock returns FixedNow.
func Clock() time.Time { return FixedNow }

// SampleEntry returns the weighing used throughout the tests:
// 34Z 999 FA, 40000 kg in, 32000 kg out, 8000 kg net.
func SampleEntry() domain.Entry {
	return domain.Entry{
		ID:            uuid.MustParse("8f14e45f-ceea-467a-9575-6b1f7e4c0a11"),
		PlateNumber:   "34Z 999 FA",
		WithLoadKg:    40000,
		WithoutLoadKg: 32000,
		NetWeightKg:   8000,
		Date:          domain.CalendarDay(FixedNow),
		Price:         service.DefaultBaselinePrice,
		CheckNumber:   "CHK-2024-001",
	}
}

// NewLogbook returns a LogbookService over an empty in-memory store whose
// draft reads the time from Clock. Extra draft options are applied after the clock.
func NewLogbook(t *testing.T, opts ...service.DraftOption) *service.LogbookService {
	t.Helper()
	opts = append([]service.DraftOption{service.WithClock(Clock)}, opts...)
	return service.NewLogbookService(repo.NewMemoryEntryRepo(), service.NewDraftEditor(opts...), nil)
}
