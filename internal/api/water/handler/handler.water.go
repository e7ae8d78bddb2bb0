// Package waterhdl xử lý các request HTTP của domain Water.
package waterhdl

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "cwc_water/internal/api/base/handler"
	waterdto "cwc_water/internal/api/water/dto"
	watersvc "cwc_water/internal/api/water/service"
	"cwc_water/internal/common"
)

// WaterHandler xử lý các request đọc dữ liệu thủy văn
type WaterHandler struct {
	queryService *watersvc.QueryService
}

// NewWaterHandler tạo mới WaterHandler
func NewWaterHandler() *WaterHandler {
	return &WaterHandler{
		queryService: watersvc.NewQueryService(),
	}
}

// ParseLimit đọc giá trị limit từ query string. Giá trị phải parse được
// thành số hữu hạn dương, nếu không thì dùng fallback của endpoint.
// Limit sai không bao giờ bị từ chối 4xx, chỉ âm thầm thay bằng mặc định.
func ParseLimit(value string, fallback int64) int64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) || parsed <= 0 {
		return fallback
	}
	// Giá trị vượt phạm vi int64 là "rất lớn", không được overflow thành số âm
	if parsed >= math.MaxInt64 {
		return math.MaxInt64
	}
	limit := int64(parsed)
	if limit <= 0 {
		// Phân số dưới 1 cắt về 0, mà limit 0 với Mongo nghĩa là "không giới hạn"
		return fallback
	}
	return limit
}

// HandleReservoirLevels trả về danh sách mực nước hồ chứa
// @Router /api/water/reservoir-levels [get]
func (h *WaterHandler) HandleReservoirLevels(c fiber.Ctx) error {
	limit := ParseLimit(c.Query("limit"), watersvc.DefaultReservoirLimit)
	docs, err := h.queryService.ListReservoirLevels(c.Context(), limit)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, waterdto.FromReservoirLevels(docs))
}

// HandleBasinDischarges trả về danh sách lưu lượng theo trạm
// @Router /api/water/basin-discharges [get]
func (h *WaterHandler) HandleBasinDischarges(c fiber.Ctx) error {
	limit := ParseLimit(c.Query("limit"), watersvc.DefaultDischargeLimit)
	docs, err := h.queryService.ListBasinDischarges(c.Context(), limit)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, waterdto.FromBasinDischarges(docs))
}

// HandleRainfall trả về danh sách lượng mưa ngày
// @Router /api/water/rainfall [get]
func (h *WaterHandler) HandleRainfall(c fiber.Ctx) error {
	limit := ParseLimit(c.Query("limit"), watersvc.DefaultRainfallLimit)
	docs, err := h.queryService.ListRainfall(c.Context(), limit)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, waterdto.FromRainfallSummaries(docs))
}

// HandleFloodAlerts trả về toàn bộ cảnh báo lũ, sắp theo độ khẩn cấp
// @Router /api/water/flood-alerts [get]
func (h *WaterHandler) HandleFloodAlerts(c fiber.Ctx) error {
	docs, err := h.queryService.ListFloodAlerts(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, waterdto.FromFloodAlerts(docs))
}

// HandleProjects trả về danh sách dự án theo tiến độ
// @Router /api/water/projects [get]
func (h *WaterHandler) HandleProjects(c fiber.Ctx) error {
	limit := ParseLimit(c.Query("limit"), watersvc.DefaultProjectLimit)
	docs, err := h.queryService.ListProjects(c.Context(), limit)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, waterdto.FromWaterProjects(docs))
}

// HandleDashboard trả về thống kê tổng hợp cho trang dashboard
// @Router /api/water/dashboard [get]
func (h *WaterHandler) HandleDashboard(c fiber.Ctx) error {
	highlights, err := h.queryService.GetDashboard(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, highlights)
}
