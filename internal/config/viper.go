// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Supported record store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// LogConfig controls log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls exported CSV files.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// StoreConfig selects and locates the record store backend.
type StoreConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	Directory  string `mapstructure:"directory" yaml:"directory"`
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// BudgetConfig holds the budget used until one has been saved.
type BudgetConfig struct {
	Default float64 `mapstructure:"default" yaml:"default"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Budget  BudgetConfig  `mapstructure:"budget" yaml:"budget"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then BUDGET_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-tracker")
	v.AddConfigPath(".budget-tracker")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.directory", "")
	v.SetDefault("store.sqlite_path", "")

	v.SetDefault("budget.default", 5000)

	v.SetDefault("display.currency_symbol", "₹")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch config.Store.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid store backend: %s (must be 'file', 'sqlite' or 'memory')", config.Store.Backend)
	}

	if config.Budget.Default <= 0 {
		return fmt.Errorf("budget.default must be greater than 0, got: %v", config.Budget.Default)
	}

	return nil
}

// DataDirectory returns the configured data directory, defaulting to
// $HOME/.budget-tracker/data.
func (c *Config) DataDirectory() string {
	if c.Store.Directory != "" {
		return c.Store.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".budget-tracker", "data")
	}
	return filepath.Join(home, ".budget-tracker", "data")
}

// SQLitePath returns the database file used by the sqlite backend.
func (c *Config) SQLitePath() string {
	if c.Store.SQLitePath != "" {
		return c.Store.SQLitePath
	}
	return filepath.Join(c.DataDirectory(), "budget-tracker.db")
}

// ConfigureLoggingFromConfig returns a stderr logger with the configured level and format.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
