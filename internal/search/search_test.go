package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
	"github.com/example/jungleyourself/internal/search"
)

func smallCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.New([]models.Product{
		{
			ID: "mat", Slug: "drainage-mat", Name: "Drainage Mat",
			Type:             models.TypeComponent,
			ShortDescription: "keeps water moving",
		},
		{
			ID: "edge", Slug: "edging-profile", Name: "Edging Profile",
			Type:             models.TypeComponent,
			ShortDescription: "tidy border",
		},
	}, nil, nil)
	require.NoError(t, err)
	return store
}

func TestSearchScoring(t *testing.T) {
	t.Parallel()

	engine := search.NewEngine(smallCatalog(t))

	t.Run("synonym expansion reaches related terms", func(t *testing.T) {
		// "drainage" expands to drenaje, water and drain. The mat collects
		// name and catch-all hits for "drainage" and "drain" plus a short
		// description hit for "water".
		results := engine.Search("drainage")
		require.Len(t, results, 1)
		assert.Equal(t, "mat", results[0].Product.ID)
		assert.Equal(t, 31, results[0].Score)
	})

	t.Run("alias finds the canonical product", func(t *testing.T) {
		// Spanish alias expands back to the whole drainage group.
		results := engine.Search("drenaje")
		require.Len(t, results, 1)
		assert.Equal(t, "mat", results[0].Product.ID)
	})

	t.Run("zero score products are excluded", func(t *testing.T) {
		results := engine.Search("substrate")
		assert.Empty(t, results)
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		assert.Empty(t, engine.Search("   "))
	})
}

func TestSearchOrdering(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)
	engine := search.NewEngine(store)

	results := engine.Search("sedum")
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	// Name matches outrank description-only matches.
	assert.Contains(t, results[0].Product.Name, "Sedum")
}

func TestSearchMonotonicity(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)
	engine := search.NewEngine(store)

	// Adding a term can only add hits; no product may lose score.
	base := engine.Search("drenaje")
	require.NotEmpty(t, base)
	wider := engine.Search("drenaje sedum")

	widerScores := make(map[string]int, len(wider))
	for _, r := range wider {
		widerScores[r.Product.ID] = r.Score
	}
	for _, r := range base {
		assert.GreaterOrEqual(t, widerScores[r.Product.ID], r.Score, "product %s", r.Product.ID)
	}
}

func TestSearchTieOrdering(t *testing.T) {
	t.Parallel()

	// Two products with identical searchable text score the same; the tie
	// keeps catalog order on every run.
	store, err := catalog.New([]models.Product{
		{
			ID: "a", Slug: "mat-a", Name: "Drainage Mat A",
			Type:             models.TypeComponent,
			ShortDescription: "keeps water moving",
		},
		{
			ID: "b", Slug: "mat-b", Name: "Drainage Mat B",
			Type:             models.TypeComponent,
			ShortDescription: "keeps water moving",
		},
	}, nil, nil)
	require.NoError(t, err)
	engine := search.NewEngine(store)

	for i := 0; i < 5; i++ {
		results := engine.Search("drainage")
		require.Len(t, results, 2)
		assert.Equal(t, results[0].Score, results[1].Score)
		assert.Equal(t, "a", results[0].Product.ID)
		assert.Equal(t, "b", results[1].Product.ID)
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)
	engine := search.NewEngine(store)

	t.Run("short queries get nothing", func(t *testing.T) {
		assert.Empty(t, engine.Suggestions("d"))
	})

	t.Run("product names then keyword, capped at five", func(t *testing.T) {
		got := engine.Suggestions("dra")
		require.Len(t, got, 5)
		assert.Equal(t, "Storm-Ready Drainage Kit – 5-10 m²", got[0])
		assert.Equal(t, "Drainage", got[4])
	})

	t.Run("keyword is title cased", func(t *testing.T) {
		got := engine.Suggestions("geote")
		assert.Contains(t, got, "Geotextile")
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, engine.Suggestions("zzzz"))
	})
}
