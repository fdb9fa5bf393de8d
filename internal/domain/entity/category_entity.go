package entity

// DefaultCategoryIcon is used when a category is added without an icon.
const DefaultCategoryIcon = "📦"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	ItemCount   int    `json:"itemCount"`
	EdoMotif    string `json:"edoMotif,omitempty"`
}

func (c Category) Key() string { return c.ID }
