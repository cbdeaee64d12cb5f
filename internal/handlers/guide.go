package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/content"
	"github.com/example/jungleyourself/internal/models"
	"github.com/example/jungleyourself/internal/services"
)

// GuideHandler serves editorial guides and the support FAQ.
type GuideHandler struct {
	catalog   *catalog.Store
	analytics *services.Analytics
}

// NewGuideHandler constructs GuideHandler.
func NewGuideHandler(cat *catalog.Store, analytics *services.Analytics) *GuideHandler {
	return &GuideHandler{catalog: cat, analytics: analytics}
}

// ListGuides returns all guides, optionally filtered by category.
func (h *GuideHandler) ListGuides(c *fiber.Ctx) error {
	guides := h.catalog.Guides()
	if category := c.Query("category"); category != "" {
		guides = h.catalog.GuidesByCategory(models.GuideCategory(category))
	}
	return c.JSON(fiber.Map{"success": true, "data": guides})
}

// GetGuide returns a guide by slug with its parsed table of contents and
// content blocks.
func (h *GuideHandler) GetGuide(c *fiber.Ctx) error {
	g, ok := h.catalog.GuideBySlug(c.Params("slug"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "guide not found")
	}

	h.analytics.GuideViewed(g.ID, g.Title)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"guide":             g,
			"table_of_contents": content.TableOfContents(g.Content),
			"blocks":            content.Blocks(g.Content),
		},
	})
}

// ListFAQs returns support questions grouped or filtered by category.
func (h *GuideHandler) ListFAQs(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    h.catalog.FAQsByCategory(models.FAQCategory(category)),
		})
	}

	// The full list comes back grouped by category in display order.
	faqs := make([]models.FAQItem, 0, len(h.catalog.FAQs()))
	for _, category := range models.FAQCategories {
		faqs = append(faqs, h.catalog.FAQsByCategory(category)...)
	}
	return c.JSON(fiber.Map{"success": true, "data": faqs})
}
