package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cragworks/gearshop/internal/domain/entity"
)

// GearForm raw gear form input. Numeric fields arrive as text and are
// validated before coercion.
type GearForm struct {
	Name          string `form:"name"`
	Brand         string `form:"brand"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	NumberInStock string `form:"number_in_stock"`
	Category      string `form:"category"`
}

// Values returns the form as the raw field map the validator consumes.
func (f GearForm) Values() map[string]string {
	return map[string]string{
		"name":            f.Name,
		"brand":           f.Brand,
		"description":     f.Description,
		"price":           f.Price,
		"number_in_stock": f.NumberInStock,
		"category":        f.Category,
	}
}

// GearView display model for a gear item. Category is zero-valued when the
// reference was not resolved.
type GearView struct {
	ID            string
	Name          string
	Brand         string
	Description   string
	Price         decimal.Decimal
	NumberInStock int
	Category      CategoryView
	URL           string
}

// GearFormPage data for the create/update form: the selector categories, the
// id of the pre-selected one ("" for none), and redisplay data after a
// validation failure (nil on first render).
type GearFormPage struct {
	Categories []CategoryView
	Selected   string
	Form       *FormRedisplay
	Gear       []GearView // existing items, shown for context on the create page
	Editing    *GearView  // set on the update form
}

// GearDeleteResult outcome of the delete workflow. Missing means the id had no
// record (idempotent no-op, caller redirects to the list); otherwise Gear is
// what the confirmation view shows and Deleted reports success.
type GearDeleteResult struct {
	Missing bool
	Gear    *GearView
	Deleted bool
}

// GearCreateResult outcome of the create workflow. Exactly one of Gear
// (redirect target: new or pre-existing record) and Page (validation failure,
// redisplay with the selector re-fetched) is set.
type GearCreateResult struct {
	Gear *GearView
	Page *GearFormPage
}

// GearUpdateResult outcome of the update workflow, same shape as create; the
// updated record keeps its original id.
type GearUpdateResult struct {
	Gear *GearView
	Page *GearFormPage
}

// ToGearView maps an entity to its display model.
func ToGearView(g *entity.Gear) GearView {
	v := GearView{
		ID:            g.ID,
		Name:          g.Name,
		Brand:         g.Brand,
		Description:   g.Description,
		Price:         g.Price,
		NumberInStock: g.NumberInStock,
		URL:           g.URL(),
	}
	if g.Category != nil {
		v.Category = ToCategoryView(g.Category)
	}
	return v
}

// ToGearViews maps a slice of entities.
func ToGearViews(list []*entity.Gear) []GearView {
	views := make([]GearView, 0, len(list))
	for _, g := range list {
		views = append(views, ToGearView(g))
	}
	return views
}

// ToCategoryViews maps a slice of entities.
func ToCategoryViews(list []*entity.Category) []CategoryView {
	views := make([]CategoryView, 0, len(list))
	for _, c := range list {
		views = append(views, ToCategoryView(c))
	}
	return views
}
