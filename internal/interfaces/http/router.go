package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	HomeUC     HomeWorkflow
	CategoryUC CategoryWorkflow
	GearUC     GearWorkflow
}

// Router registers the catalog routes. Static segments ("/category/create")
// are registered before the parameterized ones so they win the match.
func Router(app *fiber.App, deps RouterDeps) {
	homeHandler := NewHomeHandler(deps.HomeUC)
	app.Get("/", homeHandler.Index)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Get("/category/create", categoryHandler.CreateForm)
	app.Post("/category/create", categoryHandler.Create)
	app.Get("/category/:id", categoryHandler.Detail)
	app.Get("/category/:id/delete", categoryHandler.ConfirmDelete)
	app.Post("/category/:id/delete", categoryHandler.Delete)
	app.Get("/category/:id/update", categoryHandler.Update)
	app.Post("/category/:id/update", categoryHandler.Update)

	gearHandler := NewGearHandler(deps.GearUC)
	app.Get("/gear", gearHandler.List)
	app.Get("/gear/create", gearHandler.CreateForm)
	app.Post("/gear/create", gearHandler.Create)
	app.Get("/gear/:id", gearHandler.Detail)
	app.Get("/gear/:id/update", gearHandler.UpdateForm)
	app.Post("/gear/:id/update", gearHandler.Update)
	app.Get("/gear/:id/delete", gearHandler.ConfirmDelete)
	app.Post("/gear/:id/delete", gearHandler.Delete)
}

// ErrorHandler renders the generic failure page for errors that escape the
// workflows (store failures, 404s raised by handlers).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "The catalog hit an unexpected error. Please try again."
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if renderErr := c.Status(code).Render("error", fiber.Map{"Status": code, "Message": message}); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
