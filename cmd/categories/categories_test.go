package categories_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-tracker/cmd/categories"
	"fjacquet/budget-tracker/cmd/cmdtest"
	"fjacquet/budget-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand_ListsDefaults(t *testing.T) {
	cmdtest.Setup(t)

	out, err := cmdtest.Run(t, categories.Cmd, nil)
	require.NoError(t, err)
	for _, c := range models.DefaultCategories() {
		assert.Contains(t, out, c.ID)
		assert.Contains(t, out, c.Name)
	}
}

func TestCategoriesImportCommand(t *testing.T) {
	env := cmdtest.Setup(t)
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`categories:
  - id: rent
    name: Rent
    color: "#111111"
  - id: pets
`), 0o600))

	out, err := cmdtest.Run(t, categories.ImportCmd, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 categories from "+path+"\n", out)

	stored, err := env.Tracker.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "pets", stored[1].Name)

	out, err = cmdtest.Run(t, categories.Cmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, models.FallbackCategoryColor)
}

func TestCategoriesImportCommand_MissingFile(t *testing.T) {
	cmdtest.Setup(t)

	_, err := cmdtest.Run(t, categories.ImportCmd, []string{filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}
