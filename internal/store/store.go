// Package store persists expenses, the monthly budget and the category catalog
// over a pluggable key-value backend.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultBudget is the monthly budget used until one has been saved.
var DefaultBudget = decimal.NewFromInt(5000)

// RecordStore reads and writes the application's three persisted values.
// Unreadable values are logged and replaced by their defaults on load.
type RecordStore struct {
	kv            KV
	logger        logging.Logger
	defaultBudget decimal.Decimal
}

// NewRecordStore wraps kv. A non-positive defaultBudget falls back to DefaultBudget.
func NewRecordStore(kv KV, logger logging.Logger, defaultBudget decimal.Decimal) *RecordStore {
	if !defaultBudget.IsPositive() {
		defaultBudget = DefaultBudget
	}
	return &RecordStore{kv: kv, logger: logger, defaultBudget: defaultBudget}
}

// LoadRecords returns the stored expenses. Elements that are not records are
// skipped and an unreadable collection loads as empty; in both cases the
// stored value is first copied to KeyExpensesBackup so the next save cannot
// lose it.
func (s *RecordStore) LoadRecords(ctx context.Context) ([]models.Expense, error) {
	data, ok, err := s.kv.Get(ctx, KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("error loading expenses: %w", err)
	}
	records := []models.Expense{}
	if !ok {
		return records, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		s.logger.WithError(err).Warn("Stored expenses are unreadable, starting from an empty collection",
			logging.F(logging.FieldKey, KeyExpenses))
		if err := s.backupRecords(ctx, data); err != nil {
			return nil, err
		}
		return records, nil
	}

	skipped := 0
	for i, raw := range elements {
		var e models.Expense
		err := json.Unmarshal(raw, &e)
		if err == nil && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			err = fmt.Errorf("expense is null")
		}
		if err != nil {
			s.logger.WithError(err).Warn("Skipping unreadable stored expense",
				logging.F(logging.FieldKey, KeyExpenses),
				logging.F(logging.FieldIndex, i))
			skipped++
			continue
		}
		records = append(records, e)
	}
	if skipped > 0 {
		if err := s.backupRecords(ctx, data); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// backupRecords keeps a copy of a stored collection that did not load intact.
func (s *RecordStore) backupRecords(ctx context.Context, data []byte) error {
	if err := s.kv.Set(ctx, KeyExpensesBackup, data); err != nil {
		return fmt.Errorf("error backing up unreadable expenses: %w", err)
	}
	s.logger.Info("Backed up stored expenses before they are rewritten",
		logging.F(logging.FieldKey, KeyExpensesBackup))
	return nil
}

// SaveRecords replaces the stored expense collection.
func (s *RecordStore) SaveRecords(ctx context.Context, records []models.Expense) error {
	if records == nil {
		records = []models.Expense{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding expenses: %w", err)
	}
	if err := s.kv.Set(ctx, KeyExpenses, data); err != nil {
		return fmt.Errorf("error saving expenses: %w", err)
	}
	s.logger.Debug("Saved expenses", logging.F(logging.FieldCount, len(records)))
	return nil
}

// LoadBudget returns the stored monthly budget or the default.
func (s *RecordStore) LoadBudget(ctx context.Context) (decimal.Decimal, error) {
	data, ok, err := s.kv.Get(ctx, KeyBudget)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error loading budget: %w", err)
	}
	if !ok {
		return s.defaultBudget, nil
	}
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	budget, err := decimal.NewFromString(raw)
	if err != nil || !budget.IsPositive() {
		s.logger.Warn("Stored budget is unusable, using default",
			logging.F(logging.FieldKey, KeyBudget),
			logging.F(logging.FieldValue, raw))
		return s.defaultBudget, nil
	}
	return budget, nil
}

// SaveBudget stores the monthly budget as a JSON number.
func (s *RecordStore) SaveBudget(ctx context.Context, budget decimal.Decimal) error {
	if err := s.kv.Set(ctx, KeyBudget, []byte(budget.String())); err != nil {
		return fmt.Errorf("error saving budget: %w", err)
	}
	return nil
}

// LoadCategories returns the stored catalog, or the built-in one when none is
// stored or the stored value cannot be decoded.
func (s *RecordStore) LoadCategories(ctx context.Context) ([]models.Category, error) {
	data, ok, err := s.kv.Get(ctx, KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("error loading categories: %w", err)
	}
	if !ok {
		return models.DefaultCategories(), nil
	}
	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil || len(categories) == 0 {
		s.logger.Warn("Stored categories are unusable, using defaults",
			logging.F(logging.FieldKey, KeyCategories))
		return models.DefaultCategories(), nil
	}
	return categories, nil
}

// SaveCategories replaces the stored category catalog.
func (s *RecordStore) SaveCategories(ctx context.Context, categories []models.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("error encoding categories: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCategories, data); err != nil {
		return fmt.Errorf("error saving categories: %w", err)
	}
	s.logger.Debug("Saved categories", logging.F(logging.FieldCount, len(categories)))
	return nil
}

// Close releases the underlying backend.
func (s *RecordStore) Close() error {
	return s.kv.Close()
}
