package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cragworks/gearshop/internal/application/dto"
	"github.com/cragworks/gearshop/internal/domain"
)

// GearWorkflow is the slice of the gear use case the handlers need.
type GearWorkflow interface {
	List() ([]dto.GearView, error)
	Detail(id string) (*dto.GearView, error)
	CreateForm() (*dto.GearFormPage, error)
	Create(in dto.GearForm) (*dto.GearCreateResult, error)
	UpdateForm(id string) (*dto.GearFormPage, error)
	Update(id string, in dto.GearForm) (*dto.GearUpdateResult, error)
	ConfirmDelete(id string) (*dto.GearDeleteResult, error)
	Delete(id string) (*dto.GearDeleteResult, error)
}

// GearHandler serves the gear pages and forms.
type GearHandler struct {
	uc GearWorkflow
}

// NewGearHandler builds the handler.
func NewGearHandler(uc GearWorkflow) *GearHandler {
	return &GearHandler{uc: uc}
}

// List renders all gear ordered by category.
func (h *GearHandler) List(c *fiber.Ctx) error {
	gear, err := h.uc.List()
	if err != nil {
		return err
	}
	return c.Render("gear_list", fiber.Map{"Gear": gear})
}

// Detail renders one gear item with its category resolved.
func (h *GearHandler) Detail(c *fiber.Ctx) error {
	gear, err := h.uc.Detail(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "gear not found")
		}
		return err
	}
	return c.Render("gear_detail", fiber.Map{"Gear": gear})
}

// CreateForm renders the create form with the category selector.
func (h *GearHandler) CreateForm(c *fiber.Ctx) error {
	page, err := h.uc.CreateForm()
	if err != nil {
		return err
	}
	return c.Render("gear_form", fiber.Map{"Page": page, "Action": "/gear/create"})
}

// Create validates and creates a gear item, redirecting to the resulting
// record (new or pre-existing). Validation failures redisplay the form with
// the selector re-fetched.
func (h *GearHandler) Create(c *fiber.Ctx) error {
	var in dto.GearForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}
	result, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	if result.Page != nil {
		return c.Render("gear_form", fiber.Map{"Page": result.Page, "Action": "/gear/create"})
	}
	return c.Redirect(result.Gear.URL, fiber.StatusSeeOther)
}

// UpdateForm renders the update form with the current category pre-selected.
func (h *GearHandler) UpdateForm(c *fiber.Ctx) error {
	page, err := h.uc.UpdateForm(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "gear not found")
		}
		return err
	}
	return c.Render("gear_form", fiber.Map{"Page": page, "Action": "/gear/" + c.Params("id") + "/update"})
}

// Update overwrites the record at id, preserving the identifier, then
// redirects to the detail view.
func (h *GearHandler) Update(c *fiber.Ctx) error {
	var in dto.GearForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}
	result, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "gear not found")
		}
		return err
	}
	if result.Page != nil {
		return c.Render("gear_form", fiber.Map{"Page": result.Page, "Action": "/gear/" + c.Params("id") + "/update"})
	}
	return c.Redirect(result.Gear.URL, fiber.StatusSeeOther)
}

// ConfirmDelete renders the delete-confirmation page. A missing id redirects
// to the list, matching the idempotent delete below.
func (h *GearHandler) ConfirmDelete(c *fiber.Ctx) error {
	result, err := h.uc.ConfirmDelete(c.Params("id"))
	if err != nil {
		return err
	}
	if result.Missing {
		return c.Redirect("/gear", fiber.StatusSeeOther)
	}
	return c.Render("gear_delete", fiber.Map{"Gear": result.Gear})
}

// Delete removes the item unconditionally and returns to the list.
func (h *GearHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/gear", fiber.StatusSeeOther)
}
