// Package container provides dependency injection for the budget-tracker application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"os"

	"fjacquet/budget-tracker/internal/config"
	"fjacquet/budget-tracker/internal/export"
	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/store"
	"fjacquet/budget-tracker/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable
// through getter methods.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	store   *store.RecordStore
	tracker *tracker.Tracker
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered while opening the record store
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	if adapter, ok := logger.(*logging.LogrusAdapter); ok {
		// stdout is reserved for reports
		adapter.SetOutput(os.Stderr)
	}

	return newContainer(cfg, logger)
}

// NewContainerWithLogger wires dependencies around an existing logger.
// Tracker options are applied after the configured ones.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger, opts ...tracker.Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return newContainer(cfg, logger, opts...)
}

func newContainer(cfg *config.Config, logger logging.Logger, opts ...tracker.Option) (*Container, error) {
	recordStore, err := store.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	delimiter := ','
	if runes := []rune(cfg.CSV.Delimiter); len(runes) == 1 {
		delimiter = runes[0]
	}

	opts = append([]tracker.Option{tracker.WithExporter(export.NewExporter(delimiter))}, opts...)
	t := tracker.New(recordStore, logger, opts...)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Store.Backend))

	return &Container{
		logger:  logger,
		config:  cfg,
		store:   recordStore,
		tracker: t,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the record store.
func (c *Container) GetStore() *store.RecordStore {
	return c.store
}

// GetTracker returns the application service.
func (c *Container) GetTracker() *tracker.Tracker {
	return c.tracker
}

// Close releases the record store.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close record store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
