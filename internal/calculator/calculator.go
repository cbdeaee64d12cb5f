package calculator

import (
	"errors"
	"math"

	"github.com/example/jungleyourself/internal/catalog"
)

// SystemType is the build-up depth class of a green roof.
type SystemType string

const (
	SystemExtensive     SystemType = "extensive"
	SystemSemiIntensive SystemType = "semi-intensive"
	SystemIntensive     SystemType = "intensive"
)

// ErrInvalidArea is returned for non-positive areas.
var ErrInvalidArea = errors.New("calculator: area must be positive")

// ErrUnknownSystem is returned for system types outside the table.
var ErrUnknownSystem = errors.New("calculator: unknown system type")

// Range is an inclusive numeric band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SystemSpec describes one system type for display and estimation.
// Weights are saturated kg/m², prices EUR/m².
type SystemSpec struct {
	Type        SystemType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	WeightPerM2 Range      `json:"weight_per_m2"`
	PricePerM2  Range      `json:"price_per_m2"`
	Maintenance string     `json:"maintenance"`
	Plants      string     `json:"plants"`
}

// Systems lists the system types in display order.
var Systems = []SystemSpec{
	{
		Type:        SystemExtensive,
		Name:        "Extensive (Sedum)",
		Description: "Lightweight, low-maintenance sedum and succulent systems",
		WeightPerM2: Range{Min: 60, Max: 90},
		PricePerM2:  Range{Min: 45, Max: 70},
		Maintenance: "Very low",
		Plants:      "Sedum, succulents, alpine plants",
	},
	{
		Type:        SystemSemiIntensive,
		Name:        "Semi-Intensive",
		Description: "Mixed planting with herbs, grasses, and small shrubs",
		WeightPerM2: Range{Min: 120, Max: 200},
		PricePerM2:  Range{Min: 60, Max: 100},
		Maintenance: "Moderate",
		Plants:      "Herbs, grasses, perennials, small shrubs",
	},
	{
		Type:        SystemIntensive,
		Name:        "Intensive",
		Description: "Full garden with vegetables, larger plants, and diverse planting",
		WeightPerM2: Range{Min: 250, Max: 400},
		PricePerM2:  Range{Min: 85, Max: 150},
		Maintenance: "Higher",
		Plants:      "Vegetables, flowers, shrubs, small trees",
	},
}

// Result is a complete calculator estimate for one area and system type.
// Weight and budget bounds are rounded to whole kg and EUR.
type Result struct {
	AreaM2         float64    `json:"area_m2"`
	SystemType     SystemType `json:"system_type"`
	WeightMinKg    float64    `json:"weight_min_kg"`
	WeightMaxKg    float64    `json:"weight_max_kg"`
	BudgetMinEUR   float64    `json:"budget_min_eur"`
	BudgetMaxEUR   float64    `json:"budget_max_eur"`
	RecommendedKit string     `json:"recommended_kit"`
	KitSlug        string     `json:"kit_slug"`
	// ExceedsCapacity is set when a roof load capacity was given and the
	// worst-case saturated weight per m² is above it.
	ExceedsCapacity bool `json:"exceeds_capacity"`
}

// Estimate computes weight and budget bands for the area and recommends
// a kit from the catalog. loadCapacityKgM2 is the roof's bearing limit
// in kg/m²; pass 0 when unknown to skip the capacity check.
func Estimate(cat *catalog.Store, areaM2 float64, system SystemType, loadCapacityKgM2 float64) (Result, error) {
	if areaM2 <= 0 || math.IsNaN(areaM2) || math.IsInf(areaM2, 0) {
		return Result{}, ErrInvalidArea
	}
	spec, ok := systemSpec(system)
	if !ok {
		return Result{}, ErrUnknownSystem
	}

	res := Result{
		AreaM2:       areaM2,
		SystemType:   system,
		WeightMinKg:  math.Round(areaM2 * spec.WeightPerM2.Min),
		WeightMaxKg:  math.Round(areaM2 * spec.WeightPerM2.Max),
		BudgetMinEUR: math.Round(areaM2 * spec.PricePerM2.Min),
		BudgetMaxEUR: math.Round(areaM2 * spec.PricePerM2.Max),
	}

	res.KitSlug = kitForArea(system, areaM2)
	if kit, found := cat.ProductBySlug(res.KitSlug); found {
		res.RecommendedKit = kit.Name
	}

	if loadCapacityKgM2 > 0 && spec.WeightPerM2.Max > loadCapacityKgM2 {
		res.ExceedsCapacity = true
	}
	return res, nil
}

func systemSpec(t SystemType) (SystemSpec, bool) {
	for _, s := range Systems {
		if s.Type == t {
			return s, true
		}
	}
	return SystemSpec{}, false
}

// kitForArea is the area ladder per system type. Extensive roofs step
// through the sedum range, heavier systems go straight to the deeper
// substrate kits.
func kitForArea(system SystemType, areaM2 float64) string {
	switch system {
	case SystemExtensive:
		switch {
		case areaM2 <= 5:
			return "starter-garden-kit-small"
		case areaM2 <= 10:
			return "sedum-carpet-kit-large"
		default:
			return "professional-rooftop-kit-large"
		}
	case SystemSemiIntensive:
		switch {
		case areaM2 <= 5:
			return "family-garden-kit-medium"
		case areaM2 <= 10:
			return "biodiversity-haven-kit-medium"
		default:
			return "professional-rooftop-kit-large"
		}
	default: // intensive
		if areaM2 <= 10 {
			return "family-garden-kit-medium"
		}
		return "professional-rooftop-kit-large"
	}
}
