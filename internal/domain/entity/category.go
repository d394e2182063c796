package entity

import "time"

// Category groups gear items. Name is stored capitalized and is unique case-insensitively.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// URL returns the detail path for this category.
func (c *Category) URL() string {
	return "/category/" + c.ID
}
