package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cragworks/gearshop/internal/application/dto"
	"github.com/cragworks/gearshop/internal/domain"
)

// CategoryWorkflow is the slice of the category use case the handlers need.
type CategoryWorkflow interface {
	List() ([]dto.CategoryView, error)
	Detail(id string) (*dto.CategoryDetail, error)
	Create(in dto.CategoryForm) (*dto.CategoryCreateResult, error)
	ConfirmDelete(id string) (*dto.CategoryDeleteResult, error)
	Delete(id string) (*dto.CategoryDeleteResult, error)
	Update(id string, in dto.CategoryForm) error
}

// CategoryHandler serves the category pages and forms.
type CategoryHandler struct {
	uc CategoryWorkflow
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc CategoryWorkflow) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List renders all categories ordered by name.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List()
	if err != nil {
		return err
	}
	return c.Render("category_list", fiber.Map{"Categories": categories})
}

// Detail renders one category with the gear referencing it.
func (h *CategoryHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.uc.Detail(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}
	return c.Render("category_detail", fiber.Map{"Detail": detail})
}

// CreateForm renders the empty create form.
func (h *CategoryHandler) CreateForm(c *fiber.Ctx) error {
	return c.Render("category_form", fiber.Map{"Form": (*dto.FormRedisplay)(nil)})
}

// Create validates and creates a category, redirecting to the resulting
// record (new or pre-existing). Validation failures redisplay the form.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}
	result, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	if result.Form != nil {
		return c.Render("category_form", fiber.Map{"Form": result.Form})
	}
	return c.Redirect(result.Category.URL, fiber.StatusSeeOther)
}

// ConfirmDelete renders the delete-confirmation page, explaining the block
// when gear still references the category. A missing id redirects to the list.
func (h *CategoryHandler) ConfirmDelete(c *fiber.Ctx) error {
	result, err := h.uc.ConfirmDelete(c.Params("id"))
	if err != nil {
		return err
	}
	if result.Missing {
		return c.Redirect("/categories", fiber.StatusSeeOther)
	}
	return c.Render("category_delete", fiber.Map{"Detail": result.Detail, "Blocked": result.Blocked})
}

// Delete executes the delete. Missing ids and successful deletes both end at
// the list; a blocked delete re-renders the confirmation page with the
// referencing gear.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	result, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	if result.Blocked {
		return c.Render("category_delete", fiber.Map{"Detail": result.Detail, "Blocked": true})
	}
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

// Update is exposed but not supported for categories.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryForm
	_ = c.BodyParser(&in)
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrUnsupported) {
			return c.Status(fiber.StatusNotImplemented).Render("unsupported", fiber.Map{})
		}
		return err
	}
	return c.Redirect("/categories", fiber.StatusSeeOther)
}
