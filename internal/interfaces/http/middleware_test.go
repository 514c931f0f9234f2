package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
	apphttp "github.com/pankaj-shinde04/store-rating/internal/interfaces/http"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
	"github.com/pankaj-shinde04/store-rating/pkg/metrics"
)

func TestRateLimiter(t *testing.T) {
	rl := apphttp.NewRateLimiter(0.001, 2, nil)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Use(rl.Handler())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, 1, rl.Size())

	rl.Cleanup()
	assert.Equal(t, 1, rl.Size(), "por debajo del umbral no se vacía")
}

func TestRequestLogger_LogsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Output: &buf})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(apphttp.RequestLogger(log))
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.ErrStoreNotFound })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/missing", line["path"])
	assert.EqualValues(t, 404, line["status"])
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("test")
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Use(apphttp.Metrics(m))
	app.Get("/api/stores/:id", func(c *fiber.Ctx) error { return c.SendString(c.Params("id")) })

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stores/"+id, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests handled.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/api/stores/:id",status="200"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_http_requests_total"))
}
