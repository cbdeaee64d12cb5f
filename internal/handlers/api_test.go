package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/config"
	"github.com/example/jungleyourself/internal/database"
	"github.com/example/jungleyourself/internal/routes"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	db, err := database.Connect(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)

	cfg := &config.Config{FreeShippingThreshold: 150}

	app := fiber.New()
	require.NoError(t, routes.Register(app, cat, db, cfg, zerolog.Nop()))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestProductEndpoints(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	t.Run("list", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/products/?limit=50", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 20)
	})

	t.Run("list with type filter", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/products/?type=kit&limit=50", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 7)
	})

	t.Run("get by slug", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/products/starter-garden-kit-small", nil)
		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, "kit-starter-small", data["id"])
	})

	t.Run("get by id fallback", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/products/kit-starter-small", nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("not found", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/products/nope", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("related", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/products/kit-starter-small/related", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 4)
	})
}

func TestSearchEndpoints(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	t.Run("search", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/search?q=drenaje", nil)
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["data"])
	})

	t.Run("missing query", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/search", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("whitespace query yields empty list", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/search?q=%20%20", nil)
		require.Equal(t, http.StatusOK, status)
		data, ok := body["data"].([]any)
		require.True(t, ok, "data must be a list, not null")
		assert.Empty(t, data)
	})

	t.Run("suggestions", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/search/suggestions?q=dra", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 5)
	})
}

func TestWizardEndpoint(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	payload := map[string]any{
		"terrace_size_m2":        map[string]any{"min": 2, "max": 5},
		"surface_type":           "tile",
		"exposure":               "full-sun",
		"goals":                  []string{"low-maintenance"},
		"maintenance_preference": "low",
	}
	status, body := doJSON(t, app, http.MethodPost, "/api/kit-finder/recommend", payload)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	recs := data["recommendations"].([]any)
	require.NotEmpty(t, recs)

	best := recs[0].(map[string]any)
	assert.Equal(t, true, best["best_match"])
	assert.Equal(t, float64(100), best["score"])
}

func TestCartFlow(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	customer := map[string]any{
		"name":        "Ana Torres",
		"email":       "ana@example.com",
		"address":     "Calle Mayor 1",
		"city":        "Madrid",
		"postal_code": "28001",
	}

	t.Run("empty checkout rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/cart/checkout", customer)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	status, body := doJSON(t, app, http.MethodPost, "/api/cart/items",
		map[string]any{"product_id": "kit-starter-small", "quantity": 1})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(189), data["total"])

	status, body = doJSON(t, app, http.MethodGet, "/api/cart/shipping", nil)
	require.Equal(t, http.StatusOK, status)
	shipping := body["data"].(map[string]any)
	assert.Equal(t, float64(45), shipping["weight"])
	assert.Equal(t, 34.95, shipping["cost"])

	t.Run("checkout without email rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/cart/checkout",
			map[string]any{"name": "Ana Torres", "address": "Calle Mayor 1", "city": "Madrid"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	status, body = doJSON(t, app, http.MethodPost, "/api/cart/checkout", customer)
	require.Equal(t, http.StatusCreated, status)
	order := body["data"].(map[string]any)
	// Subtotal 189 clears the 150 threshold, so shipping is waived.
	assert.Equal(t, true, order["free_shipping"])
	assert.Equal(t, float64(189), order["total"])
	assert.Contains(t, order["order_number"], "JY-")

	status, body = doJSON(t, app, http.MethodGet, "/api/cart/", nil)
	require.Equal(t, http.StatusOK, status)
	cleared := body["data"].(map[string]any)
	assert.Empty(t, cleared["items"])
}

func TestRemoveItemAnalyticsQuantity(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Default()
	require.NoError(t, err)

	db, err := database.Connect(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)

	var logs bytes.Buffer
	app := fiber.New()
	require.NoError(t, routes.Register(app, cat, db, &config.Config{FreeShippingThreshold: 150}, zerolog.New(&logs)))

	status, _ := doJSON(t, app, http.MethodPost, "/api/cart/items",
		map[string]any{"product_id": "kit-starter-small", "quantity": 3})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/cart/items/kit-starter-small", nil)
	require.Equal(t, http.StatusOK, status)

	// The removal event carries the quantity of the removed line.
	var removeLine string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, "remove_from_cart") {
			removeLine = line
		}
	}
	require.NotEmpty(t, removeLine)
	assert.Contains(t, removeLine, `"quantity":3`)
}

func TestGuideEndpoints(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	t.Run("list", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/guides/", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 5)
	})

	t.Run("detail includes parsed content", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/guides/installation-step-by-step", nil)
		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["table_of_contents"])
		assert.NotEmpty(t, data["blocks"])
	})

	t.Run("faqs by category", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/faqs?category=returns", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 3)
	})

	t.Run("faqs grouped in category display order", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/faqs", nil)
		require.Equal(t, http.StatusOK, status)
		data := body["data"].([]any)
		require.Len(t, data, 18)
		assert.Equal(t, "general", data[0].(map[string]any)["category"])
		assert.Equal(t, "returns", data[17].(map[string]any)["category"])
	})
}

func TestCalculatorEndpoints(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	t.Run("systems", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/calculator/systems", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 3)
	})

	t.Run("estimate from dimensions", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/calculator/estimate",
			map[string]any{"length_m": 2, "width_m": 2, "system_type": "extensive"})
		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(4), data["area_m2"])
		assert.Equal(t, "starter-garden-kit-small", data["kit_slug"])
	})

	t.Run("invalid area", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/calculator/estimate",
			map[string]any{"area_m2": -1})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
