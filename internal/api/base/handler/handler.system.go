package basehdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"cwc_water/internal/common"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{}, nil
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Summary Kiểm tra tình trạng hệ thống
// @Description Trả về trạng thái API và thời điểm hiện tại
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
