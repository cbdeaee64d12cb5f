package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)

	t.Run("seed data loads", func(t *testing.T) {
		assert.Len(t, store.Products(), 20)
		assert.Len(t, store.Guides(), 5)
		assert.Len(t, store.FAQs(), 18)
	})

	t.Run("lookup by id and slug", func(t *testing.T) {
		p, ok := store.ProductByID("kit-starter-small")
		require.True(t, ok)
		assert.Equal(t, "Starter Garden Kit – 2-5 m²", p.Name)
		assert.Equal(t, 189.0, p.Price)

		bySlug, ok := store.ProductBySlug("starter-garden-kit-small")
		require.True(t, ok)
		assert.Equal(t, p.ID, bySlug.ID)

		_, ok = store.ProductByID("no-such-product")
		assert.False(t, ok)
	})

	t.Run("kit included items reference real products", func(t *testing.T) {
		for _, kit := range store.ProductsByType(models.TypeKit) {
			for _, item := range kit.IncludedItems {
				_, ok := store.ProductByID(item.ProductID)
				assert.True(t, ok, "kit %s references missing product %s", kit.ID, item.ProductID)
			}
		}
	})

	t.Run("kits by size", func(t *testing.T) {
		small := store.KitsBySize(models.SizeSmall)
		require.Len(t, small, 2)
		assert.Equal(t, "kit-starter-small", small[0].ID)
		assert.Equal(t, "kit-shade-garden", small[1].ID)
	})

	t.Run("guides by category", func(t *testing.T) {
		installation := store.GuidesByCategory(models.GuideInstallation)
		assert.Len(t, installation, 2)

		g, ok := store.GuideBySlug("seasonal-maintenance-calendar")
		require.True(t, ok)
		assert.Equal(t, models.GuideMaintenance, g.Category)
	})

	t.Run("faqs by category", func(t *testing.T) {
		assert.Len(t, store.FAQsByCategory(models.FAQGeneral), 4)
		assert.Len(t, store.FAQsByCategory(models.FAQReturns), 3)
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	valid := models.Product{ID: "p1", Slug: "p-1", Name: "P1", Type: models.TypeComponent, Price: 10}

	t.Run("duplicate id rejected", func(t *testing.T) {
		dup := valid
		dup.Slug = "p-2"
		_, err := catalog.New([]models.Product{valid, dup}, nil, nil)
		assert.ErrorContains(t, err, "duplicate product id")
	})

	t.Run("duplicate slug rejected", func(t *testing.T) {
		dup := valid
		dup.ID = "p2"
		_, err := catalog.New([]models.Product{valid, dup}, nil, nil)
		assert.ErrorContains(t, err, "duplicate product slug")
	})

	t.Run("missing slug rejected", func(t *testing.T) {
		broken := valid
		broken.Slug = ""
		_, err := catalog.New([]models.Product{broken}, nil, nil)
		assert.ErrorContains(t, err, "missing id or slug")
	})

	t.Run("non URL-safe slug rejected", func(t *testing.T) {
		broken := valid
		broken.Slug = "p 1"
		_, err := catalog.New([]models.Product{broken}, nil, nil)
		assert.ErrorContains(t, err, "slug")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		broken := valid
		broken.Price = -1
		_, err := catalog.New([]models.Product{broken}, nil, nil)
		assert.ErrorContains(t, err, "negative price")
	})

	t.Run("inverted coverage rejected", func(t *testing.T) {
		broken := valid
		broken.CoverageM2 = &models.CoverageRange{Min: 10, Max: 5}
		_, err := catalog.New([]models.Product{broken}, nil, nil)
		assert.ErrorContains(t, err, "coverage")
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)

	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, store.Filter(models.FilterState{}, "", ""), 20)
	})

	t.Run("type filter", func(t *testing.T) {
		kits := store.Filter(models.FilterState{ProductType: []models.ProductType{models.TypeKit}}, "", "")
		assert.Len(t, kits, 7)
	})

	t.Run("size filter excludes components", func(t *testing.T) {
		filtered := store.Filter(models.FilterState{SizeCategory: []models.SizeCategory{models.SizeSmall}}, "", "")
		require.Len(t, filtered, 2)
		for _, p := range filtered {
			assert.Equal(t, models.TypeKit, p.Type)
		}
	})

	t.Run("price range", func(t *testing.T) {
		filtered := store.Filter(models.FilterState{PriceRange: models.PriceRange{Min: 500}}, "", "")
		for _, p := range filtered {
			assert.GreaterOrEqual(t, p.Price, 500.0)
		}
		assert.NotEmpty(t, filtered)
	})

	t.Run("query matches name and short description", func(t *testing.T) {
		filtered := store.Filter(models.FilterState{}, "sedum", "")
		require.NotEmpty(t, filtered)
		ids := make([]string, 0, len(filtered))
		for _, p := range filtered {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, "kit-sedum-extensive")
		assert.Contains(t, ids, "substrate-sedum")
	})

	t.Run("sort price ascending", func(t *testing.T) {
		sorted := store.Filter(models.FilterState{}, "", catalog.SortPriceAsc)
		require.Len(t, sorted, 20)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
		}
	})

	t.Run("popular sort floats best sellers", func(t *testing.T) {
		sorted := store.Filter(models.FilterState{}, "", catalog.SortPopular)
		require.NotEmpty(t, sorted)
		assert.True(t, sorted[0].HasBadge(models.BadgeBestSeller))
		// Non best-sellers keep catalog order after the badge block.
		seenPlain := false
		for _, p := range sorted {
			if !p.HasBadge(models.BadgeBestSeller) {
				seenPlain = true
			} else {
				assert.False(t, seenPlain, "best seller after non best-seller")
			}
		}
	})
}
