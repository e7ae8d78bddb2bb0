// Package router lắp ráp toàn bộ route của API dữ liệu nước.
package router

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	basehdl "cwc_water/internal/api/base/handler"
	waterrouter "cwc_water/internal/api/water/router"
	"cwc_water/internal/metrics"
)

// SetupRoutes đăng ký toàn bộ route lên app: health check, metrics
// và group /api/water.
func SetupRoutes(app *fiber.App, m *metrics.Metrics) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("create system handler: %w", err)
	}
	app.Get("/health", systemHandler.HandleHealth)

	// Expose Prometheus metrics qua adaptor net/http
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	water := app.Group("/api/water")
	if m != nil {
		water.Use(requestCounter(m))
	}
	waterrouter.Register(water)

	return nil
}

// requestCounter đếm request theo endpoint và status code trả về.
func requestCounter(m *metrics.Metrics) fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		m.HTTPRequests.WithLabelValues(c.Path(), strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
