package store

import (
	"fmt"

	"fjacquet/budget-tracker/internal/config"
	"fjacquet/budget-tracker/internal/logging"

	"github.com/shopspring/decimal"
)

// OpenKV creates the backend selected by cfg.Store.Backend.
func OpenKV(cfg *config.Config) (KV, error) {
	switch cfg.Store.Backend {
	case config.BackendFile, "":
		return NewFileKV(cfg.DataDirectory())
	case config.BackendSQLite:
		return NewSQLiteKV(cfg.SQLitePath())
	case config.BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// Open creates the configured backend and wraps it in a RecordStore.
func Open(cfg *config.Config, logger logging.Logger) (*RecordStore, error) {
	kv, err := OpenKV(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Opened record store", logging.F(logging.FieldBackend, cfg.Store.Backend))
	return NewRecordStore(kv, logger, decimal.NewFromFloat(cfg.Budget.Default)), nil
}
