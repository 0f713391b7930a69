package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingKV) Set(context.Context, string, []byte) error         { return f.err }
func (f failingKV) Close() error                                      { return nil }

type readOnlyKV struct {
	*MemoryKV
	err error
}

func (r *readOnlyKV) Set(context.Context, string, []byte) error { return r.err }

func newTestStore(t *testing.T) (*RecordStore, *MemoryKV, *logging.MockLogger) {
	t.Helper()
	kv := NewMemoryKV()
	logger := logging.NewMockLogger()
	return NewRecordStore(kv, logger, decimal.Zero), kv, logger
}

func TestRecordStore_Defaults(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	budget, err := s.LoadBudget(ctx)
	require.NoError(t, err)
	assert.True(t, budget.Equal(decimal.NewFromInt(5000)))

	categories, err := s.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)
}

func TestRecordStore_ConfiguredDefaultBudget(t *testing.T) {
	s := NewRecordStore(NewMemoryKV(), logging.NewMockLogger(), decimal.NewFromInt(8000))
	budget, err := s.LoadBudget(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8000", budget.String())
}

func TestRecordStore_RoundTrip(t *testing.T) {
	s, kv, _ := newTestStore(t)
	ctx := context.Background()

	records := []models.Expense{
		{ID: "b", Amount: models.NewAmountFromString("50.5"), Category: "food", Description: "Lunch", Date: "2024-03-05", CreatedAt: "2024-03-05T12:00:00Z"},
		{ID: "a", Amount: models.NewAmountFromString("100"), Category: "bills", Description: "Power", Date: "2024-03-01"},
	}
	require.NoError(t, s.SaveRecords(ctx, records))

	raw, ok, err := kv.Get(ctx, KeyExpenses)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"amount":50.5`)

	loaded, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	require.NoError(t, s.SaveBudget(ctx, decimal.RequireFromString("12500.75")))
	budget, err := s.LoadBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12500.75", budget.String())

	custom := []models.Category{{ID: "rent", Name: "Rent", Color: "#000000"}}
	require.NoError(t, s.SaveCategories(ctx, custom))
	categories, err := s.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, categories)
}

func TestRecordStore_MalformedAmountStillLoads(t *testing.T) {
	s, kv, _ := newTestStore(t)
	ctx := context.Background()

	blob := `[{"id":"1","amount":"abc","category":"food","description":"x","date":"2024-01-01"},
	          {"id":"2","amount":"42","category":"food","description":"y","date":"2024-01-02"}]`
	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(blob)))

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.False(t, records[0].Amount.Valid())
	assert.Equal(t, "abc", records[0].Amount.String())
	assert.True(t, records[1].Amount.Valid())
}

func TestRecordStore_BadRecordDegradesOnlyThatRecord(t *testing.T) {
	s, kv, logger := newTestStore(t)
	ctx := context.Background()

	blob := `[{"id":"a","amount":100,"category":"food","description":"Lunch","date":"2024-03-05"},
	          {"id":"b","amount":50,"category":"food","description":"Snack","date":20240306},
	          {"id":7,"amount":"20","category":["x"],"description":false,"date":"2024-03-07"}]`
	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(blob)))

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "20240306", records[1].Date)
	_, ok := records[1].CalendarDate()
	assert.False(t, ok)
	assert.Equal(t, "7", records[2].ID)
	assert.Equal(t, `["x"]`, records[2].Category)

	assert.Empty(t, logger.GetEntriesByLevel("WARN"))
	_, backedUp, err := kv.Get(ctx, KeyExpensesBackup)
	require.NoError(t, err)
	assert.False(t, backedUp)
}

func TestRecordStore_NonRecordElementsAreSkippedAndBackedUp(t *testing.T) {
	s, kv, logger := newTestStore(t)
	ctx := context.Background()

	blob := `[{"id":"a","amount":100,"category":"food","description":"Lunch","date":"2024-03-05"},
	          "garbage", null, 42]`
	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(blob)))

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)

	warnings := logger.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 3)
	index, _ := warnings[0].FieldValue(logging.FieldIndex)
	assert.Equal(t, 1, index)

	backup, ok, err := kv.Get(ctx, KeyExpensesBackup)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, blob, string(backup))
}

func TestRecordStore_UnreadableCollectionIsBackedUp(t *testing.T) {
	s, kv, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`{"id":"a"}`)))

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, s.SaveRecords(ctx, []models.Expense{{ID: "new"}}))
	backup, ok, err := kv.Get(ctx, KeyExpensesBackup)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"a"}`, string(backup))
}

func TestRecordStore_BackupFailureIsReturned(t *testing.T) {
	boom := errors.New("read only")
	kv := &readOnlyKV{MemoryKV: NewMemoryKV(), err: boom}
	ctx := context.Background()
	require.NoError(t, kv.MemoryKV.Set(ctx, KeyExpenses, []byte("{not json")))

	s := NewRecordStore(kv, logging.NewMockLogger(), decimal.Zero)
	_, err := s.LoadRecords(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error backing up unreadable expenses")
}

func TestRecordStore_CorruptValuesDegrade(t *testing.T) {
	s, kv, logger := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte("{not json")))
	require.NoError(t, kv.Set(ctx, KeyBudget, []byte("lots")))
	require.NoError(t, kv.Set(ctx, KeyCategories, []byte("[]")))

	records, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	backup, ok, err := kv.Get(ctx, KeyExpensesBackup)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{not json", string(backup))

	budget, err := s.LoadBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5000", budget.String())

	categories, err := s.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	assert.Len(t, logger.GetEntriesByLevel("WARN"), 3)
}

func TestRecordStore_BackendErrorsAreWrapped(t *testing.T) {
	boom := errors.New("backend down")
	s := NewRecordStore(failingKV{err: boom}, logging.NewMockLogger(), decimal.Zero)
	ctx := context.Background()

	_, err := s.LoadRecords(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.LoadBudget(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.LoadCategories(ctx)
	assert.ErrorIs(t, err, boom)

	err = s.SaveRecords(ctx, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error saving expenses")
	assert.ErrorIs(t, s.SaveBudget(ctx, decimal.NewFromInt(1)), boom)
	assert.ErrorIs(t, s.SaveCategories(ctx, nil), boom)
}

func TestLoadCategoriesYAML(t *testing.T) {
	dir := t.TempDir()

	wrapped := filepath.Join(dir, "wrapped.yaml")
	require.NoError(t, os.WriteFile(wrapped, []byte(`
categories:
  - id: rent
    name: Rent
    color: "#111111"
  - id: pets
`), 0o600))

	categories, err := LoadCategoriesYAML(wrapped)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{
		{ID: "rent", Name: "Rent", Color: "#111111"},
		{ID: "pets", Name: "pets", Color: models.FallbackCategoryColor},
	}, categories)

	bare := filepath.Join(dir, "bare.yaml")
	require.NoError(t, os.WriteFile(bare, []byte("- id: travel\n  name: Travel\n  color: \"#222222\"\n"), 0o600))
	categories, err = LoadCategoriesYAML(bare)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: "travel", Name: "Travel", Color: "#222222"}}, categories)
}

func TestLoadCategoriesYAML_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCategoriesYAML(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	noID := filepath.Join(dir, "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("- name: Nameless\n"), 0o600))
	_, err = LoadCategoriesYAML(noID)
	assert.ErrorContains(t, err, "has no id")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("categories: []\n"), 0o600))
	_, err = LoadCategoriesYAML(empty)
	assert.Error(t, err)
}
