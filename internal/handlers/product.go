package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
	"github.com/example/jungleyourself/internal/recommend"
	"github.com/example/jungleyourself/internal/services"
	"github.com/example/jungleyourself/internal/utils"
)

// ProductHandler serves the shop listing and product detail pages.
type ProductHandler struct {
	catalog   *catalog.Store
	recommend *recommend.Engine
	analytics *services.Analytics
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(cat *catalog.Store, rec *recommend.Engine, analytics *services.Analytics) *ProductHandler {
	return &ProductHandler{catalog: cat, recommend: rec, analytics: analytics}
}

// ListProducts returns the filtered, sorted, paginated shop listing.
// Facets arrive as comma-separated query params; "search" is the plain
// substring filter of the listing page.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filters := parseFilters(c)
	query := c.Query("search")
	sortBy := c.Query("sort", catalog.SortPopular)

	for _, facet := range []string{"type", "size", "exposure", "maintenance", "goal"} {
		if v := c.Query(facet); v != "" {
			h.analytics.FilterApplied(facet, v)
		}
	}

	products := h.catalog.Filter(filters, query, sortBy)

	pg := utils.ParsePagination(c)
	total := len(products)
	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct returns a single product by slug, falling back to id so
// legacy links keep working.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	key := c.Params("slug")

	p, ok := h.catalog.ProductBySlug(key)
	if !ok {
		p, ok = h.catalog.ProductByID(key)
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	h.analytics.ViewItem(p.ID, p.Name, p.Price)
	return c.JSON(fiber.Map{"success": true, "data": p})
}

// RelatedProducts returns products related to the given product id.
func (h *ProductHandler) RelatedProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.catalog.ProductByID(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "4"))
	related := h.recommend.Related(id, limit)

	return c.JSON(fiber.Map{"success": true, "data": related})
}

// parseFilters reads the shop facet query params. Unknown values pass
// through; they simply match nothing.
func parseFilters(c *fiber.Ctx) models.FilterState {
	var f models.FilterState

	for _, v := range splitParam(c.Query("type")) {
		f.ProductType = append(f.ProductType, models.ProductType(v))
	}
	for _, v := range splitParam(c.Query("size")) {
		f.SizeCategory = append(f.SizeCategory, models.SizeCategory(v))
	}
	for _, v := range splitParam(c.Query("exposure")) {
		f.Exposure = append(f.Exposure, models.Exposure(v))
	}
	for _, v := range splitParam(c.Query("maintenance")) {
		f.Maintenance = append(f.Maintenance, models.MaintenanceLevel(v))
	}
	for _, v := range splitParam(c.Query("goal")) {
		f.Goals = append(f.Goals, models.Goal(v))
	}

	if v := c.Query("price_min"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Min = parsed
		}
	}
	if v := c.Query("price_max"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Max = parsed
		}
	}

	return f
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
