// Package tracker implements the user-facing intents of the budget tracker:
// recording and deleting expenses, managing the budget and category catalog,
// and producing the monthly and yearly views. Every query reloads the stored
// collection and recomputes through the aggregate package.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/budget-tracker/internal/aggregate"
	"fjacquet/budget-tracker/internal/export"
	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/store"
	"fjacquet/budget-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrExpenseNotFound is returned when deleting an id that is not stored.
var ErrExpenseNotFound = errors.New("expense not found")

// Store is the persistence the tracker needs.
type Store interface {
	LoadRecords(ctx context.Context) ([]models.Expense, error)
	SaveRecords(ctx context.Context, records []models.Expense) error
	LoadBudget(ctx context.Context) (decimal.Decimal, error)
	SaveBudget(ctx context.Context, budget decimal.Decimal) error
	LoadCategories(ctx context.Context) ([]models.Category, error)
	SaveCategories(ctx context.Context, categories []models.Category) error
}

// Tracker coordinates the store and the aggregation engine.
type Tracker struct {
	store    Store
	logger   logging.Logger
	now      func() time.Time
	newID    func() string
	exporter *export.Exporter
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// WithExporter sets the CSV exporter, e.g. to change the delimiter.
func WithExporter(e *export.Exporter) Option {
	return func(t *Tracker) { t.exporter = e }
}

// New creates a Tracker over s.
func New(s Store, logger logging.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store:    s,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		exporter: export.NewExporter(','),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// NewExpense is an expense as entered by the user, before validation.
type NewExpense struct {
	Amount      string
	Category    string
	Description string
	Date        string
}

// AddExpense validates input, stores it as the newest record and returns it.
// An empty date means today.
func (t *Tracker) AddExpense(ctx context.Context, input NewExpense) (models.Expense, error) {
	amount, err := validation.Amount(input.Amount)
	if err != nil {
		return models.Expense{}, err
	}
	if err := validation.Category(input.Category); err != nil {
		return models.Expense{}, err
	}
	if err := validation.Description(input.Description); err != nil {
		return models.Expense{}, err
	}

	now := t.now()
	dateInput := input.Date
	if strings.TrimSpace(dateInput) == "" {
		dateInput = now.Format("2006-01-02")
	}
	date, err := validation.Date(dateInput)
	if err != nil {
		return models.Expense{}, err
	}

	records, err := t.store.LoadRecords(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		ID:          t.newID(),
		Amount:      models.NewAmount(amount),
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Date:        date,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}

	updated := make([]models.Expense, 0, len(records)+1)
	updated = append(updated, expense)
	updated = append(updated, records...)

	if err := t.store.SaveRecords(ctx, updated); err != nil {
		return models.Expense{}, err
	}

	t.logger.Info("Expense added",
		logging.F(logging.FieldRecordID, expense.ID),
		logging.F(logging.FieldCategory, expense.Category))
	return expense, nil
}

// DeleteExpense removes the record with id.
func (t *Tracker) DeleteExpense(ctx context.Context, id string) error {
	records, err := t.store.LoadRecords(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Expense, 0, len(records))
	for _, e := range records {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(records) {
		return fmt.Errorf("%w: %s", ErrExpenseNotFound, id)
	}

	if err := t.store.SaveRecords(ctx, remaining); err != nil {
		return err
	}
	t.logger.Info("Expense deleted", logging.F(logging.FieldRecordID, id))
	return nil
}

// Budget returns the monthly budget.
func (t *Tracker) Budget(ctx context.Context) (decimal.Decimal, error) {
	return t.store.LoadBudget(ctx)
}

// SetBudget parses and stores a new monthly budget.
func (t *Tracker) SetBudget(ctx context.Context, input string) (decimal.Decimal, error) {
	budget, err := validation.Budget(input)
	if err != nil {
		return decimal.Zero, err
	}
	if err := t.store.SaveBudget(ctx, budget); err != nil {
		return decimal.Zero, err
	}
	t.logger.Info("Budget updated", logging.F(logging.FieldValue, budget.String()))
	return budget, nil
}

// Categories returns the category catalog.
func (t *Tracker) Categories(ctx context.Context) ([]models.Category, error) {
	return t.store.LoadCategories(ctx)
}

// ImportCategories replaces the catalog with the one in a YAML file.
func (t *Tracker) ImportCategories(ctx context.Context, path string) ([]models.Category, error) {
	categories, err := store.LoadCategoriesYAML(path)
	if err != nil {
		return nil, err
	}
	if err := t.store.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	t.logger.Info("Categories imported",
		logging.F(logging.FieldPath, path),
		logging.F(logging.FieldCount, len(categories)))
	return categories, nil
}

// Records returns every stored expense.
func (t *Tracker) Records(ctx context.Context) ([]models.Expense, error) {
	return t.loadAndReport(ctx)
}

// AvailableYears lists the years that have records, newest first.
func (t *Tracker) AvailableYears(ctx context.Context) ([]int, error) {
	records, err := t.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.AvailableYears(records), nil
}

// loadAndReport loads the collection and logs every malformed field in it.
func (t *Tracker) loadAndReport(ctx context.Context) ([]models.Expense, error) {
	records, err := t.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, perr := range aggregate.Malformed(records) {
		t.logger.WithError(perr.Err).Warn("Malformed expense field",
			logging.F(logging.FieldRecordID, perr.RecordID),
			logging.F(logging.FieldField, perr.Field),
			logging.F(logging.FieldValue, perr.Value))
	}
	return records, nil
}
