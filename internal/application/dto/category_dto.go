package dto

import (
	"github.com/cragworks/gearshop/internal/domain/entity"
	"github.com/cragworks/gearshop/internal/domain/validate"
)

// CategoryForm raw category form input.
type CategoryForm struct {
	Name string `form:"name"`
}

// Values returns the form as the raw field map the validator consumes.
func (f CategoryForm) Values() map[string]string {
	return map[string]string{"name": f.Name}
}

// CategoryView display model for a category.
type CategoryView struct {
	ID   string
	Name string
	URL  string
}

// FormRedisplay bundles normalized values and field errors so a failed form
// can be shown again with the user's input intact.
type FormRedisplay struct {
	Values map[string]string
	Errors []validate.FieldError
}

// Value returns the normalized value for a field ("" if absent).
func (f *FormRedisplay) Value(field string) string {
	if f == nil {
		return ""
	}
	return f.Values[field]
}

// Error returns the message for a field, or "" if the field is clean.
func (f *FormRedisplay) Error(field string) string {
	if f == nil {
		return ""
	}
	for _, e := range f.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// CategoryDetail a category together with the gear referencing it.
type CategoryDetail struct {
	Category CategoryView
	Gear     []GearView
}

// CategoryCreateResult outcome of the create workflow. Exactly one of
// Category (redirect target: new or pre-existing record) and Form
// (validation failure, redisplay) is set.
type CategoryCreateResult struct {
	Category *CategoryView
	Form     *FormRedisplay
}

// CategoryDeleteResult outcome of the delete workflow. Missing means the id
// had no record (idempotent no-op, caller redirects to the list). Otherwise
// Detail carries what the confirmation view shows; Blocked is true when the
// referential guard refused the delete; Deleted reports success.
type CategoryDeleteResult struct {
	Missing bool
	Detail  *CategoryDetail
	Blocked bool
	Deleted bool
}

// ToCategoryView maps an entity to its display model.
func ToCategoryView(c *entity.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name, URL: c.URL()}
}
