package store

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/budget-tracker/internal/fileutils"
	"fjacquet/budget-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// LoadCategoriesYAML reads a category catalog from path. Both the
// "categories: [...]" form and a bare list are accepted. Entries without an
// id are rejected and a missing color becomes models.FallbackCategoryColor.
func LoadCategoriesYAML(path string) ([]models.Category, error) {
	if !fileutils.FileExists(path) {
		return nil, fmt.Errorf("categories file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categories []models.Category

	var wrapped models.CategoriesConfig
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Categories) > 0 {
		categories = wrapped.Categories
	} else if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("categories file %s contains no categories", path)
	}

	for i := range categories {
		c := &categories[i]
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			return nil, fmt.Errorf("category %d in %s has no id", i+1, path)
		}
		if c.Name == "" {
			c.Name = c.ID
		}
		if c.Color == "" {
			c.Color = models.FallbackCategoryColor
		}
	}
	return categories, nil
}
