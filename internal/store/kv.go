package store

import "context"

// Keys under which the record store persists its values.
const (
	KeyExpenses   = "budget_tracker_expenses"
	KeyBudget     = "budget_tracker_budget"
	KeyCategories = "budget_tracker_categories"

	// KeyExpensesBackup holds the last expense collection that did not load intact.
	KeyExpensesBackup = "budget_tracker_expenses_backup"
)

// KV is a string-keyed blob store. Set replaces the whole value of a key
// atomically; Get reports whether the key has ever been written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
