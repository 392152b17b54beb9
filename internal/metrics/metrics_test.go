package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	m.SetWalletCount(3)

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/api/btcwallet/address/:address", func(c *fiber.Ctx) error {
		return c.JSON(nil)
	})

	for _, addr := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/btcwallet/address/"+addr, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `btcwallet_http_requests_total{method="GET",route="/api/btcwallet/address/:address",status="200"} 2`)
	assert.Contains(t, body, "btcwallet_wallets 3")
	assert.False(t, strings.Contains(body, `route="/api/btcwallet/address/a"`))
}
