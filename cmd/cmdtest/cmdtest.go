// Package cmdtest runs commands against an in-memory tracker.
package cmdtest

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/internal/config"
	"fjacquet/budget-tracker/internal/container"
	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/tracker"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// Now is the fixed clock of the test tracker.
var Now = time.Date(2024, time.March, 20, 15, 4, 5, 0, time.UTC)

// Env is a wired test environment.
type Env struct {
	Tracker *tracker.Tracker
	Logger  *logging.MockLogger
}

// Config returns a configuration using the memory backend.
func Config() *config.Config {
	return &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		CSV:     config.CSVConfig{Delimiter: ","},
		Store:   config.StoreConfig{Backend: config.BackendMemory},
		Budget:  config.BudgetConfig{Default: 5000},
		Display: config.DisplayConfig{CurrencySymbol: "₹"},
	}
}

// Setup installs a memory-backed container as root.AppContainer for the
// duration of the test. Ids are "id-1", "id-2" and so on.
func Setup(t *testing.T) *Env {
	t.Helper()

	logger := logging.NewMockLogger()
	next := 0
	c, err := container.NewContainerWithLogger(Config(), logger,
		tracker.WithClock(func() time.Time { return Now }),
		tracker.WithIDGenerator(func() string {
			next++
			return fmt.Sprintf("id-%d", next)
		}))
	require.NoError(t, err)

	originalContainer := root.AppContainer
	originalFlags := root.SharedFlags
	root.AppContainer = c
	t.Cleanup(func() {
		_ = c.Close()
		root.AppContainer = originalContainer
		root.SharedFlags = originalFlags
	})

	return &Env{Tracker: c.GetTracker(), Logger: logger}
}

// Add records an expense or fails the test.
func (e *Env) Add(t *testing.T, amount, category, description, date string) {
	t.Helper()
	_, err := e.Tracker.AddExpense(context.Background(), tracker.NewExpense{
		Amount: amount, Category: category, Description: description, Date: date,
	})
	require.NoError(t, err)
}

// Run sets flags from name/value pairs, runs cmd and returns its output.
// Flags are reset to their defaults afterwards.
func Run(t *testing.T, cmd *cobra.Command, args []string, flags ...string) (string, error) {
	t.Helper()
	require.Zero(t, len(flags)%2, "flags must be name/value pairs")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetContext(context.Background())
	defer func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
		resetFlags(cmd.Flags())
	}()

	for i := 0; i < len(flags); i += 2 {
		require.NoError(t, cmd.Flags().Set(flags[i], flags[i+1]))
	}

	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}
