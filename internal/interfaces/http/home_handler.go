package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cragworks/gearshop/internal/application/usecase"
)

// HomeWorkflow produces the landing-page summary.
type HomeWorkflow interface {
	Counts() (*usecase.HomeCounts, error)
}

// HomeHandler serves the home page.
type HomeHandler struct {
	uc HomeWorkflow
}

// NewHomeHandler builds the handler.
func NewHomeHandler(uc HomeWorkflow) *HomeHandler {
	return &HomeHandler{uc: uc}
}

// Index renders the summary counts of both collections.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	counts, err := h.uc.Counts()
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{"Counts": counts})
}
