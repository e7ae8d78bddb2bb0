// Package router đăng ký các route thuộc domain Water.
package router

import (
	"github.com/gofiber/fiber/v3"

	waterhdl "cwc_water/internal/api/water/handler"
)

// Register đăng ký các endpoint đọc dữ liệu thủy văn lên group /api/water.
func Register(water fiber.Router) {
	waterHandler := waterhdl.NewWaterHandler()

	water.Get("/reservoir-levels", waterHandler.HandleReservoirLevels)
	water.Get("/basin-discharges", waterHandler.HandleBasinDischarges)
	water.Get("/rainfall", waterHandler.HandleRainfall)
	water.Get("/flood-alerts", waterHandler.HandleFloodAlerts)
	water.Get("/projects", waterHandler.HandleProjects)
	water.Get("/dashboard", waterHandler.HandleDashboard)
}
