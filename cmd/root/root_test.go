package root_test

import (
	"testing"

	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/internal/config"
	"fjacquet/budget-tracker/internal/container"
	"fjacquet/budget-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget-tracker", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "expenses")
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	for _, name := range []string{"backend", "data-dir", "no-color"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestGetTracker_WithoutContainer(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	root.AppContainer = nil
	_, err := root.GetTracker()
	assert.ErrorIs(t, err, root.ErrNoContainer)
	assert.Equal(t, "", root.CurrencySymbol())
}

func TestPersistentHooks_UseProvidedContainer(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	cfg := &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		CSV:     config.CSVConfig{Delimiter: ","},
		Store:   config.StoreConfig{Backend: config.BackendMemory},
		Budget:  config.BudgetConfig{Default: 5000},
		Display: config.DisplayConfig{CurrencySymbol: "₹"},
	}
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	root.AppContainer = c

	require.NoError(t, root.Cmd.PersistentPreRunE(root.Cmd, nil))
	assert.Same(t, c, root.AppContainer)

	tr, err := root.GetTracker()
	require.NoError(t, err)
	assert.NotNil(t, tr)
	assert.Equal(t, "₹", root.CurrencySymbol())

	root.Cmd.PersistentPostRun(root.Cmd, nil)
	assert.Nil(t, root.AppContainer)
}

func TestColorEnabled(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&discard{})
	assert.False(t, root.ColorEnabled(cmd), "non-terminal writers never get colors")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
