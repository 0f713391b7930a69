package models

// FallbackCategoryColor is used for category ids missing from the catalog.
const FallbackCategoryColor = "#64748b"

// Category is a catalog entry that expenses reference by ID.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// CategoriesConfig is the top-level structure of a category catalog file.
type CategoriesConfig struct {
	Categories []Category `yaml:"categories"`
}

// DefaultCategories returns the built-in catalog used when none is configured.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food & Dining", Color: "#ef4444"},
		{ID: "transport", Name: "Transport", Color: "#f97316"},
		{ID: "entertainment", Name: "Entertainment", Color: "#8b5cf6"},
		{ID: "bills", Name: "Bills & Utilities", Color: "#06b6d4"},
		{ID: "shopping", Name: "Shopping", Color: "#ec4899"},
		{ID: "health", Name: "Health & Fitness", Color: "#10b981"},
		{ID: "other", Name: "Other", Color: FallbackCategoryColor},
	}
}

// CategoryIndex maps category ids to catalog entries.
type CategoryIndex map[string]Category

// NewCategoryIndex indexes a catalog. When ids repeat, the first entry wins.
func NewCategoryIndex(categories []Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, c := range categories {
		if _, exists := index[c.ID]; !exists {
			index[c.ID] = c
		}
	}
	return index
}

// Name returns the display name for id, or id itself when it is unknown.
func (idx CategoryIndex) Name(id string) string {
	if c, ok := idx[id]; ok {
		return c.Name
	}
	return id
}

// Color returns the display color for id, or FallbackCategoryColor.
func (idx CategoryIndex) Color(id string) string {
	if c, ok := idx[id]; ok {
		return c.Color
	}
	return FallbackCategoryColor
}
