package catalog

import (
	"fmt"
	"net/url"

	"github.com/example/jungleyourself/internal/models"
)

// Store is the immutable in-memory catalog. It is built once at startup and
// never mutated afterwards, so reads need no locking. Lookups by id and slug
// go through maps validated for uniqueness at construction time.
type Store struct {
	products []models.Product
	guides   []models.Guide
	faqs     []models.FAQItem

	productByID   map[string]*models.Product
	productBySlug map[string]*models.Product
	guideBySlug   map[string]*models.Guide
}

// New validates the seed data and builds the lookup maps. Duplicate ids or
// slugs, negative prices and inverted coverage ranges are construction
// errors: the catalog is a build-time artifact and malformation should stop
// the server, not surface at request time.
func New(products []models.Product, guides []models.Guide, faqs []models.FAQItem) (*Store, error) {
	s := &Store{
		products:      products,
		guides:        guides,
		faqs:          faqs,
		productByID:   make(map[string]*models.Product, len(products)),
		productBySlug: make(map[string]*models.Product, len(products)),
		guideBySlug:   make(map[string]*models.Guide, len(guides)),
	}

	for i := range products {
		p := &products[i]
		if p.ID == "" || p.Slug == "" {
			return nil, fmt.Errorf("catalog: product %q missing id or slug", p.Name)
		}
		if !slugSafe(p.Slug) {
			return nil, fmt.Errorf("catalog: product %q has non URL-safe slug %q", p.ID, p.Slug)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %q has negative price", p.ID)
		}
		if p.CoverageM2 != nil && p.CoverageM2.Min > p.CoverageM2.Max {
			return nil, fmt.Errorf("catalog: product %q has inverted coverage range", p.ID)
		}
		if _, ok := s.productByID[p.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if _, ok := s.productBySlug[p.Slug]; ok {
			return nil, fmt.Errorf("catalog: duplicate product slug %q", p.Slug)
		}
		s.productByID[p.ID] = p
		s.productBySlug[p.Slug] = p
	}

	for i := range guides {
		g := &guides[i]
		if g.ID == "" || g.Slug == "" {
			return nil, fmt.Errorf("catalog: guide %q missing id or slug", g.Title)
		}
		if _, ok := s.guideBySlug[g.Slug]; ok {
			return nil, fmt.Errorf("catalog: duplicate guide slug %q", g.Slug)
		}
		s.guideBySlug[g.Slug] = g
	}

	return s, nil
}

// Default builds the store from the embedded seed data.
func Default() (*Store, error) {
	return New(seedProducts, seedGuides, seedFAQs)
}

func slugSafe(slug string) bool {
	return url.PathEscape(slug) == slug
}

// Products returns all products in catalog (insertion) order.
func (s *Store) Products() []models.Product {
	return s.products
}

// ProductByID looks a product up by id.
func (s *Store) ProductByID(id string) (*models.Product, bool) {
	p, ok := s.productByID[id]
	return p, ok
}

// ProductBySlug looks a product up by slug.
func (s *Store) ProductBySlug(slug string) (*models.Product, bool) {
	p, ok := s.productBySlug[slug]
	return p, ok
}

// ProductsByType returns products of the given type in catalog order.
func (s *Store) ProductsByType(t models.ProductType) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// KitsBySize returns kits sold for the given size category.
func (s *Store) KitsBySize(category models.SizeCategory) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Type == models.TypeKit && p.SizeCategory == category {
			out = append(out, p)
		}
	}
	return out
}

// Guides returns all guides in catalog order.
func (s *Store) Guides() []models.Guide {
	return s.guides
}

// GuideBySlug looks a guide up by slug.
func (s *Store) GuideBySlug(slug string) (*models.Guide, bool) {
	g, ok := s.guideBySlug[slug]
	return g, ok
}

// GuidesByCategory returns guides in the given category.
func (s *Store) GuidesByCategory(category models.GuideCategory) []models.Guide {
	var out []models.Guide
	for _, g := range s.guides {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// FAQs returns all support questions.
func (s *Store) FAQs() []models.FAQItem {
	return s.faqs
}

// FAQsByCategory returns support questions in the given category.
func (s *Store) FAQsByCategory(category models.FAQCategory) []models.FAQItem {
	var out []models.FAQItem
	for _, f := range s.faqs {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}
