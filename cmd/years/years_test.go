package years_test

import (
	"testing"

	"fjacquet/budget-tracker/cmd/cmdtest"
	"fjacquet/budget-tracker/cmd/years"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsCommand(t *testing.T) {
	env := cmdtest.Setup(t)

	out, err := cmdtest.Run(t, years.Cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "No expenses recorded yet.\n", out)

	env.Add(t, "10", "food", "A", "2022-05-01")
	env.Add(t, "10", "food", "B", "2024-01-01")
	env.Add(t, "10", "food", "C", "2022-06-01")

	out, err = cmdtest.Run(t, years.Cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024\n2022\n", out)
}
