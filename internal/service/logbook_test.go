package service_test

import (
	"context"
	"iter"
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/caravan-log/backend/internal/domain"
	"github.com/pkordes/caravan-log/backend/internal/repo"
	"github.com/pkordes/caravan-log/backend/internal/service"
)

// mockEntryRepo is a hand-written test double for repo.EntryRepo.
// Each method is a function field; set only the ones your test needs.
type mockEntryRepo struct {
	upsert func(entry domain.Entry)
	delete func(id uuid.UUID) bool
	get    func(id uuid.UUID) (domain.Entry, error)
	list   func() iter.Seq[domain.Entry]
	len    func() int
	clear  func()
}

func (m *mockEntryRepo) Upsert(entry domain.Entry) { m.upsert(entry) }
func (m *mockEntryRepo) Delete(id uuid.UUID) bool { return m.delete(id) }
func (m *mockEntryRepo) Get(id uuid.UUID) (domain.Entry, error) { return m.get(id) }
func (m *mockEntryRepo) List() iter.Seq[domain.Entry] { return m.list() }
func (m *mockEntryRepo) Len() int { return m.len() }
func (m *mockEntryRepo) Clear() { m.clear() }

// compile-time check: mockEntryRepo must satisfy repo.EntryRepo.
var _ repo.EntryRepo = (*mockEntryRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func newTestLogbook(t *testing.T) *service.LogbookService {
	t.Helper()
	d, _ := newTestDraft(t)
	return service.NewLogbookService(repo.NewMemoryEntryRepo(), d, nil)
}

// submitEntry fills the draft through the service and submits it.
func submitEntry(t *testing.T, svc *service.LogbookService, fields map[domain.Field]string) domain.Entry {
	t.Helper()
	ctx := context.Background()
	for f, v := range fields {
		_, err := svc.SetField(ctx, f, v)
		require.NoError(t, err)
	}
	e, _, err := svc.Submit(ctx)
	require.NoError(t, err)
	return e
}

func listedPlates(t *testing.T, svc *service.LogbookService) []string {
	t.Helper()
	l, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	var out []string
	for _, r := range l.Rows {
		out = append(out, r.Entry.PlateNumber)
	}
	return out
}

func caravanFields() map[domain.Field]string {
	return map[domain.Field]string{
		domain.FieldPlateNumber:   "34Z 999 FA",
		domain.FieldWithLoadKg:    "40000",
		domain.FieldWithoutLoadKg: "32000",
		domain.FieldPrice:         "30000",
	}
}

// ---- Submit ----------------------------------------------------------------

func TestLogbookService_Submit_CreatesAtFront(t *testing.T) {
	svc := newTestLogbook(t)

	submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "A"})
	submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "B"})

	assert.Equal(t, []string{"B", "A"}, listedPlates(t, svc))
	assert.Equal(t, 2, svc.Count())
}

func TestLogbookService_Submit_ReportsCreated(t *testing.T) {
	svc := newTestLogbook(t)
	ctx := context.Background()

	_, err := svc.SetField(ctx, domain.FieldPlateNumber, "A")
	require.NoError(t, err)
	e, created, err := svc.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = svc.BeginEdit(ctx, e.ID)
	require.NoError(t, err)
	_, created, err = svc.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLogbookService_Submit_ValidationLeavesStoreUntouched(t *testing.T) {
	r := &mockEntryRepo{
		upsert: func(domain.Entry) { t.Fatal("Upsert must not be called on validation failure") },
	}
	d, _ := newTestDraft(t)
	svc := service.NewLogbookService(r, d, nil)
	ctx := context.Background()

	_, err := svc.SetField(ctx, domain.FieldPlateNumber, "   ")
	require.NoError(t, err)

	_, _, err = svc.Submit(ctx)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "   ", svc.Draft(ctx).Input.PlateNumber)
}

func TestLogbookService_Submit_EmptyPlateKeepsListing(t *testing.T) {
	svc := newTestLogbook(t)
	submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "A"})

	_, _, err := svc.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"A"}, listedPlates(t, svc))
}

// ---- SetField --------------------------------------------------------------

func TestLogbookService_SetField_ReturnsPreview(t *testing.T) {
	svc := newTestLogbook(t)
	ctx := context.Background()

	_, err := svc.SetField(ctx, domain.FieldWithLoadKg, "40000")
	require.NoError(t, err)
	v, err := svc.SetField(ctx, domain.FieldWithoutLoadKg, "32000")

	require.NoError(t, err)
	assert.Equal(t, 8000.0, v.NetWeightPreview)
}

func TestLogbookService_SetField_Unknown(t *testing.T) {
	svc := newTestLogbook(t)

	_, err := svc.SetField(context.Background(), domain.Field("bogus"), "x")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- BeginEdit -------------------------------------------------------------

func TestLogbookService_BeginEdit_NotFound(t *testing.T) {
	svc := newTestLogbook(t)

	_, err := svc.BeginEdit(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Scenarios -------------------------------------------------------------

func TestLogbookService_Scenario_CreateSearchEditDelete(t *testing.T) {
	svc := newTestLogbook(t)
	ctx := context.Background()

	other := submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "01A 123 BC"})
	created := submitEntry(t, svc, caravanFields())
	require.Equal(t, 8000.0, created.NetWeightKg)

	// Search "999" finds exactly this entry with the plate highlighted.
	l, err := svc.List(ctx, " 999 ")
	require.NoError(t, err)
	assert.True(t, l.Active())
	assert.Equal(t, 2, l.Total)
	require.Len(t, l.Rows, 1)
	assert.Equal(t, created.ID, l.Rows[0].Entry.ID)
	assert.Equal(t, domain.Highlight{Prefix: "34Z ", Match: "999", Suffix: " FA", Found: true},
		l.Rows[0].Highlights[domain.FieldPlateNumber])

	// Search "zzz" yields nothing.
	l, err = svc.List(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, l.Rows)

	// Edit withoutLoad to 35000 through the same id.
	_, err = svc.BeginEdit(ctx, created.ID)
	require.NoError(t, err)
	v, err := svc.SetField(ctx, domain.FieldWithoutLoadKg, "35000")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, v.NetWeightPreview)
	updated, wasCreated, err := svc.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 5000.0, updated.NetWeightKg)
	assert.Equal(t, []string{"34Z 999 FA", "01A 123 BC"}, listedPlates(t, svc), "position unchanged")

	// Delete the entry while it is being edited: the draft resets.
	_, err = svc.BeginEdit(ctx, created.ID)
	require.NoError(t, err)
	res, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteResult{Deleted: true, DraftReset: true}, res)

	d := svc.Draft(ctx)
	assert.Empty(t, d.Input.PlateNumber)
	assert.Nil(t, d.EditingID)
	assert.Equal(t, []string{other.PlateNumber}, listedPlates(t, svc))
}

// ---- Delete ----------------------------------------------------------------

func TestLogbookService_Delete_OtherEntryKeepsDraft(t *testing.T) {
	svc := newTestLogbook(t)
	ctx := context.Background()
	a := submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "A"})
	b := submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "B"})

	_, err := svc.BeginEdit(ctx, a.ID)
	require.NoError(t, err)
	res, err := svc.Delete(ctx, b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.DeleteResult{Deleted: true}, res)
	d := svc.Draft(ctx)
	require.NotNil(t, d.EditingID)
	assert.Equal(t, a.ID, *d.EditingID)
	assert.Equal(t, "A", d.Input.PlateNumber)
}

func TestLogbookService_Delete_AbsentIsNoop(t *testing.T) {
	svc := newTestLogbook(t)
	submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "A"})
	submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: "B"})

	res, err := svc.Delete(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.False(t, res.DraftReset)
	assert.Equal(t, []string{"B", "A"}, listedPlates(t, svc))
}

func TestLogbookService_Delete_KeepsRelativeOrder(t *testing.T) {
	svc := newTestLogbook(t)
	var ids []uuid.UUID
	for _, p := range []string{"A", "B", "C", "D"} {
		ids = append(ids, submitEntry(t, svc, map[domain.Field]string{domain.FieldPlateNumber: p}).ID)
	}

	_, err := svc.Delete(context.Background(), ids[1])

	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "A"}, listedPlates(t, svc))
}

// ---- List ------------------------------------------------------------------

func TestLogbookService_List_InactiveSearch(t *testing.T) {
	svc := newTestLogbook(t)
	submitEntry(t, svc, caravanFields())

	l, err := svc.List(context.Background(), "   ")

	require.NoError(t, err)
	assert.False(t, l.Active())
	assert.Equal(t, 1, l.Total)
	require.Len(t, l.Rows, 1)
	assert.Nil(t, l.Rows[0].Highlights)
}

func TestLogbookService_List_Empty(t *testing.T) {
	svc := newTestLogbook(t)

	l, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	// Should return an empty slice, not nil, so callers can safely range over it.
	assert.NotNil(t, l.Rows)
	assert.Empty(t, l.Rows)
}

func TestLogbookService_List_UsesStoreOrder(t *testing.T) {
	entries := []domain.Entry{
		{ID: uuid.New(), PlateNumber: "first 7"},
		{ID: uuid.New(), PlateNumber: "second"},
		{ID: uuid.New(), PlateNumber: "third 7"},
	}
	r := &mockEntryRepo{list: func() iter.Seq[domain.Entry] { return slices.Values(entries) }}
	d, _ := newTestDraft(t)
	svc := service.NewLogbookService(r, d, nil)

	l, err := svc.List(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, 3, l.Total)
	require.Len(t, l.Rows, 2)
	assert.Equal(t, "first 7", l.Rows[0].Entry.PlateNumber)
	assert.Equal(t, "third 7", l.Rows[1].Entry.PlateNumber)
}

// ---- Reload ----------------------------------------------------------------

func TestLogbookService_Reload(t *testing.T) {
	svc := newTestLogbook(t)
	ctx := context.Background()
	e := submitEntry(t, svc, caravanFields())
	_, err := svc.BeginEdit(ctx, e.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Reload(ctx))

	assert.Zero(t, svc.Count())
	d := svc.Draft(ctx)
	assert.Nil(t, d.EditingID)
	assert.Empty(t, d.Input.PlateNumber)
	assert.Equal(t, "30000", d.Input.Price)
}

// ---- Concurrency -----------------------------------------------------------

func TestLogbookService_ConcurrentSubmitsAreSerialized(t *testing.T) {
	d := service.NewDraftEditor()
	svc := service.NewLogbookService(repo.NewMemoryEntryRepo(), d, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SetField(ctx, domain.FieldPlateNumber, "P")
			_, _, _ = svc.Submit(ctx)
			_, _ = svc.List(ctx, "p")
		}()
	}
	wg.Wait()

	// Each submit either saw a filled plate or an already-reset draft; no entry
	// is ever half-written.
	l, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, svc.Count(), l.Total)
	for _, r := range l.Rows {
		assert.Equal(t, "P", r.Entry.PlateNumber)
	}
}
