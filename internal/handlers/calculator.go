package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jungleyourself/internal/calculator"
	"github.com/example/jungleyourself/internal/catalog"
)

// CalculatorHandler serves the weight and budget estimator.
type CalculatorHandler struct {
	catalog *catalog.Store
}

// NewCalculatorHandler constructs CalculatorHandler.
func NewCalculatorHandler(cat *catalog.Store) *CalculatorHandler {
	return &CalculatorHandler{catalog: cat}
}

type estimateRequest struct {
	// Either area_m2 or length_m and width_m must be given.
	AreaM2           float64               `json:"area_m2"`
	LengthM          float64               `json:"length_m"`
	WidthM           float64               `json:"width_m"`
	SystemType       calculator.SystemType `json:"system_type"`
	LoadCapacityKgM2 float64               `json:"load_capacity_kg_m2"`
}

// ListSystems returns the system type table for display.
func (h *CalculatorHandler) ListSystems(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": calculator.Systems})
}

// Estimate computes weight and budget bands and a kit recommendation.
func (h *CalculatorHandler) Estimate(c *fiber.Ctx) error {
	var payload estimateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	area := payload.AreaM2
	if area == 0 {
		area = payload.LengthM * payload.WidthM
	}
	if payload.SystemType == "" {
		payload.SystemType = calculator.SystemExtensive
	}

	result, err := calculator.Estimate(h.catalog, area, payload.SystemType, payload.LoadCapacityKgM2)
	if err != nil {
		switch {
		case errors.Is(err, calculator.ErrInvalidArea):
			return fiber.NewError(fiber.StatusBadRequest, "area must be positive")
		case errors.Is(err, calculator.ErrUnknownSystem):
			return fiber.NewError(fiber.StatusBadRequest, "unknown system type")
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}
