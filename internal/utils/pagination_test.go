package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jungleyourself/internal/utils"
)

func parse(t *testing.T, target string) utils.Pagination {
	t.Helper()

	var got utils.Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = utils.ParsePagination(c)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return got
}

func TestParsePagination(t *testing.T) {
	t.Parallel()

	assert.Equal(t, utils.Pagination{Page: 1, Limit: 20, Offset: 0}, parse(t, "/"))
	assert.Equal(t, utils.Pagination{Page: 3, Limit: 10, Offset: 20}, parse(t, "/?page=3&limit=10"))
	assert.Equal(t, utils.Pagination{Page: 1, Limit: 20, Offset: 0}, parse(t, "/?page=-1&limit=0"))
	assert.Equal(t, utils.Pagination{Page: 1, Limit: 100, Offset: 0}, parse(t, "/?limit=5000"))
	assert.Equal(t, utils.Pagination{Page: 1, Limit: 20, Offset: 0}, parse(t, "/?page=x&limit=y"))
}
