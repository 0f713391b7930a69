// Package root contains the root command for the application
package root

import (
	"errors"
	"os"

	"fjacquet/budget-tracker/internal/config"
	"fjacquet/budget-tracker/internal/container"
	"fjacquet/budget-tracker/internal/tracker"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrNoContainer is returned by commands run before the container is initialized.
var ErrNoContainer = errors.New("application container is not initialized")

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	Backend string
	DataDir string
	NoColor bool
}

var (
	// Log is the bootstrap logger used before the container exists
	Log = logrus.New()

	// AppContainer holds the wired dependencies for the running command
	AppContainer *container.Container

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-tracker",
		Short: "Track personal expenses against a monthly budget.",
		Long: `budget-tracker records personal expenses, compares monthly spending with
a budget, breaks spending down by category and year, and exports CSV files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initContainer,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.Warnf("Failed to close record store: %v", err)
			}
			AppContainer = nil
		},
	}
)

// initContainer loads configuration and wires the container unless one has
// already been provided.
func initContainer(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		return nil
	}

	config.LoadEnv()
	Log = config.ConfigureLogging()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	Log = config.ConfigureLoggingFromConfig(cfg)
	if SharedFlags.Backend != "" {
		cfg.Store.Backend = SharedFlags.Backend
	}
	if SharedFlags.DataDir != "" {
		cfg.Store.Directory = SharedFlags.DataDir
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

// GetTracker returns the tracker of the current container.
func GetTracker() (*tracker.Tracker, error) {
	if AppContainer == nil {
		return nil, ErrNoContainer
	}
	return AppContainer.GetTracker(), nil
}

// CurrencySymbol returns the configured display symbol.
func CurrencySymbol() string {
	if AppContainer == nil {
		return ""
	}
	return AppContainer.GetConfig().Display.CurrencySymbol
}

// ColorEnabled reports whether reports may use terminal colors.
func ColorEnabled(cmd *cobra.Command) bool {
	if SharedFlags.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cmd.OutOrStdout() == os.Stdout
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Record store backend: file, sqlite or memory (overrides config)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the record store (overrides config)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.NoColor, "no-color", false, "Disable colored output")
}
