package models

// ProductType distinguishes bundled kits from standalone materials.
type ProductType string

const (
	TypeKit       ProductType = "kit"
	TypeComponent ProductType = "component"
)

// SurfaceType is the terrace flooring a product can be installed on.
type SurfaceType string

const (
	SurfaceTile     SurfaceType = "tile"
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceDecking  SurfaceType = "decking"
	SurfaceGravel   SurfaceType = "gravel"
)

// Exposure is the sun-exposure category a product is suited for.
type Exposure string

const (
	ExposureFullSun      Exposure = "full-sun"
	ExposurePartialShade Exposure = "partial-shade"
	ExposureShade        Exposure = "shade"
)

// MaintenanceLevel describes how much care a product demands.
type MaintenanceLevel string

const (
	MaintenanceLow    MaintenanceLevel = "low"
	MaintenanceMedium MaintenanceLevel = "medium"
	MaintenanceHigh   MaintenanceLevel = "high"
)

// Goal is a user-facing intent tag used to match products to preferences.
type Goal string

const (
	GoalLowMaintenance Goal = "low-maintenance"
	GoalBiodiversity   Goal = "biodiversity"
	GoalAesthetics     Goal = "aesthetics"
	GoalShade          Goal = "shade"
	GoalDrainage       Goal = "drainage"
	GoalEdible         Goal = "edible"
)

// Badge is a marketing label shown on product cards.
type Badge string

const (
	BadgeBeginnerFriendly Badge = "beginner-friendly"
	BadgeLightweight      Badge = "lightweight"
	BadgeLowMaintenance   Badge = "low-maintenance"
	BadgeBiodiversity     Badge = "biodiversity"
	BadgeBestSeller       Badge = "best-seller"
	BadgeNew              Badge = "new"
)

// StockStatus reflects current availability.
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
	StockPreOrder   StockStatus = "pre-order"
)

// SizeCategory is the coverage band a kit is sold for, in m².
type SizeCategory string

const (
	SizeSmall  SizeCategory = "2-5"
	SizeMedium SizeCategory = "5-10"
	SizeLarge  SizeCategory = "10-20"
)

// CoverageRange is the m² band a kit covers.
type CoverageRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type ProductDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"` // datasheet|instructions|warranty
}

// IncludedItem is a component bundled inside a kit.
type IncludedItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type Review struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Verified bool   `json:"verified"`
}

// ProductFAQ is a question answered on a product detail page.
type ProductFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Product is an immutable catalog record, seeded at startup.
type Product struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	Name             string            `json:"name"`
	Type             ProductType       `json:"type"`
	ShortDescription string            `json:"short_description"`
	LongDescription  string            `json:"long_description"`
	Price            float64           `json:"price"`
	Currency         string            `json:"currency"`
	Images           []ProductImage    `json:"images"`
	StockStatus      StockStatus       `json:"stock_status"`
	LeadTimeDays     int               `json:"lead_time_days"`
	WeightPerUnit    float64           `json:"weight_per_unit"` // kg
	WeightPerM2      float64           `json:"weight_per_m2,omitempty"`
	Compatibility    []SurfaceType     `json:"compatibility"`
	Exposure         []Exposure        `json:"exposure"`
	Maintenance      MaintenanceLevel  `json:"maintenance"`
	Goals            []Goal            `json:"goals"`
	Badges           []Badge           `json:"badges"`
	SizeCategory     SizeCategory      `json:"size_category,omitempty"`
	CoverageM2       *CoverageRange    `json:"coverage_m2,omitempty"`
	IncludedItems    []IncludedItem    `json:"included_items,omitempty"`
	StillNeeded      []string          `json:"still_needed,omitempty"`
	ToolsNeeded      []string          `json:"tools_needed,omitempty"`
	TimeEstimate     string            `json:"time_estimate,omitempty"`
	Documents        []ProductDocument `json:"documents"`
	Reviews          []Review          `json:"reviews"`
	FAQs             []ProductFAQ      `json:"faqs"`
}

// HasGoal reports whether the product carries the given goal tag.
func (p *Product) HasGoal(goal Goal) bool {
	for _, g := range p.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// HasBadge reports whether the product carries the given badge.
func (p *Product) HasBadge(badge Badge) bool {
	for _, b := range p.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// SupportsSurface reports whether the product can be installed on the surface.
func (p *Product) SupportsSurface(surface SurfaceType) bool {
	for _, s := range p.Compatibility {
		if s == surface {
			return true
		}
	}
	return false
}

// SuitsExposure reports whether the product suits the sun exposure.
func (p *Product) SuitsExposure(exposure Exposure) bool {
	for _, e := range p.Exposure {
		if e == exposure {
			return true
		}
	}
	return false
}
