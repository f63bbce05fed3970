package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/orders/:id", "204"))
	resp, err := app.Test(httptest.NewRequest("GET", "/orders/123", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/orders/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(ordersClosed.WithLabelValues("true"))
	RecordOrderClosed(true)
	assert.Equal(t, before+1, testutil.ToFloat64(ordersClosed.WithLabelValues("true")))

	before = testutil.ToFloat64(ledgerPostings.WithLabelValues("GOLD", "DEBIT"))
	RecordLedgerPosting("GOLD", "DEBIT")
	assert.Equal(t, before+1, testutil.ToFloat64(ledgerPostings.WithLabelValues("GOLD", "DEBIT")))

	before = testutil.ToFloat64(notifications.WithLabelValues("welcome", "false"))
	RecordNotification("welcome", false)
	assert.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("welcome", "false")))
}
