package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/search"
	"github.com/example/jungleyourself/internal/services"
)

// SearchHandler serves the synonym-aware product search.
type SearchHandler struct {
	engine    *search.Engine
	analytics *services.Analytics
}

// NewSearchHandler constructs SearchHandler.
func NewSearchHandler(engine *search.Engine, analytics *services.Analytics) *SearchHandler {
	return &SearchHandler{engine: engine, analytics: analytics}
}

// Search returns scored products for the q parameter.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing query parameter q")
	}

	results := h.engine.Search(query)
	h.analytics.Search(query, len(results))

	if results == nil {
		results = []search.Result{}
	}
	return c.JSON(fiber.Map{"success": true, "data": results})
}

// Suggestions returns completions for a partial query.
func (h *SearchHandler) Suggestions(c *fiber.Ctx) error {
	suggestions := h.engine.Suggestions(c.Query("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	return c.JSON(fiber.Map{"success": true, "data": suggestions})
}
