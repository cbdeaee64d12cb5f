package catalog

import (
	"sort"
	"strings"

	"github.com/example/jungleyourself/internal/models"
)

// Sort orders accepted by Filter.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortPopular   = "popular"
)

// Filter applies the shop page facets, free-text filter and sort order.
// The query here is the plain substring filter of the listing page, not the
// synonym-expanded search engine. All sorts are stable so ties keep catalog
// order.
func (s *Store) Filter(filters models.FilterState, query, sortBy string) []models.Product {
	result := make([]models.Product, 0, len(s.products))

	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range s.products {
		if q != "" && !matchesQuery(&p, q) {
			continue
		}
		if len(filters.ProductType) > 0 && !containsType(filters.ProductType, p.Type) {
			continue
		}
		// Size category only exists on kits; a size filter excludes components.
		if len(filters.SizeCategory) > 0 && (p.SizeCategory == "" || !containsSize(filters.SizeCategory, p.SizeCategory)) {
			continue
		}
		if len(filters.Exposure) > 0 && !anyExposure(&p, filters.Exposure) {
			continue
		}
		if len(filters.Maintenance) > 0 && !containsMaintenance(filters.Maintenance, p.Maintenance) {
			continue
		}
		if len(filters.Goals) > 0 && !anyGoal(&p, filters.Goals) {
			continue
		}
		if p.Price < filters.PriceRange.Min {
			continue
		}
		if filters.PriceRange.Max > 0 && p.Price > filters.PriceRange.Max {
			continue
		}
		result = append(result, p)
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortName:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	default: // popular
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].HasBadge(models.BadgeBestSeller) && !result[j].HasBadge(models.BadgeBestSeller)
		})
	}

	return result
}

func matchesQuery(p *models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.ShortDescription), q) {
		return true
	}
	for _, g := range p.Goals {
		if strings.Contains(string(g), q) {
			return true
		}
	}
	return false
}

func containsType(list []models.ProductType, v models.ProductType) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsSize(list []models.SizeCategory, v models.SizeCategory) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsMaintenance(list []models.MaintenanceLevel, v models.MaintenanceLevel) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func anyExposure(p *models.Product, list []models.Exposure) bool {
	for _, e := range list {
		if p.SuitsExposure(e) {
			return true
		}
	}
	return false
}

func anyGoal(p *models.Product, list []models.Goal) bool {
	for _, g := range list {
		if p.HasGoal(g) {
			return true
		}
	}
	return false
}
