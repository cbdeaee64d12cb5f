package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/models"
	"github.com/example/jungleyourself/internal/recommend"
	"github.com/example/jungleyourself/internal/services"
)

// WizardHandler serves the kit finder questionnaire.
type WizardHandler struct {
	engine    *recommend.Engine
	analytics *services.Analytics
}

// NewWizardHandler constructs WizardHandler.
func NewWizardHandler(engine *recommend.Engine, analytics *services.Analytics) *WizardHandler {
	return &WizardHandler{engine: engine, analytics: analytics}
}

// Start records the beginning of a wizard session.
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	h.analytics.WizardStarted()
	return c.JSON(fiber.Map{"success": true})
}

// Recommend scores all kits against the submitted answers and returns
// the top matches plus suggested add-ons.
func (h *WizardHandler) Recommend(c *fiber.Ctx) error {
	var state models.WizardState
	if err := c.BodyParser(&state); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	recommendations := h.engine.Recommend(state)
	addons := h.engine.Addons(state)

	h.analytics.WizardCompleted(len(recommendations))

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"recommendations": recommendations,
			"addons":          addons,
		},
	})
}
