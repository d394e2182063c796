package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gear is a catalog item. It always references exactly one Category; the
// (Name, Brand) pair is unique case-insensitively. Name and Brand are stored
// capitalized.
type Gear struct {
	ID            string
	Name          string
	Brand         string
	Description   string
	Price         decimal.Decimal
	NumberInStock int
	CategoryID    string
	Category      *Category // resolved for display; nil when not joined
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// URL returns the detail path for this gear item.
func (g *Gear) URL() string {
	return "/gear/" + g.ID
}
