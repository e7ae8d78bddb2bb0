// Package client cung cấp client Go cho API dữ liệu nước, kèm dataset
// dự phòng tĩnh khi API không khả dụng.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	waterdto "cwc_water/internal/api/water/dto"
)

// ErrFallbackMessage - thông báo tĩnh hiển thị cho người dùng khi phải
// dùng dữ liệu mẫu đóng gói sẵn.
const ErrFallbackMessage = "Live water datasets unavailable; showing cached sample data."

// WaterData gom toàn bộ dataset mà client lấy về trong một chu kỳ fetch.
// Err khác rỗng nghĩa là dữ liệu đang là bản dự phòng đóng gói sẵn.
type WaterData struct {
	Reservoirs []waterdto.ReservoirLevelDTO
	Discharges []waterdto.BasinDischargeDTO
	Rainfall   []waterdto.RainfallSummaryDTO
	Alerts     []waterdto.FloodAlertDTO
	Projects   []waterdto.WaterProjectDTO
	Dashboard  waterdto.DashboardHighlights
	Err        string
}

// WaterClient gọi các endpoint của API dữ liệu nước.
// Không có retry: một lần fetch lỗi được báo một lần và không tự thử lại.
type WaterClient struct {
	http *resty.Client
}

// NewWaterClient tạo client trỏ tới baseURL (ví dụ "http://localhost:4000/api/water").
func NewWaterClient(baseURL string) *WaterClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &WaterClient{http: httpClient}
}

// getJSON thực hiện GET và decode JSON body vào out.
func (c *WaterClient) getJSON(ctx context.Context, path string, query map[string]string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("request failed: %d %s", resp.StatusCode(), resp.String())
	}
	return json.Unmarshal(resp.Body(), out)
}

func limitQuery(limit int) map[string]string {
	if limit <= 0 {
		return nil
	}
	return map[string]string{"limit": fmt.Sprintf("%d", limit)}
}

// ReservoirLevels lấy danh sách mực nước hồ chứa
func (c *WaterClient) ReservoirLevels(ctx context.Context, limit int) ([]waterdto.ReservoirLevelDTO, error) {
	var out []waterdto.ReservoirLevelDTO
	err := c.getJSON(ctx, "/reservoir-levels", limitQuery(limit), &out)
	return out, err
}

// BasinDischarges lấy danh sách lưu lượng theo trạm
func (c *WaterClient) BasinDischarges(ctx context.Context, limit int) ([]waterdto.BasinDischargeDTO, error) {
	var out []waterdto.BasinDischargeDTO
	err := c.getJSON(ctx, "/basin-discharges", limitQuery(limit), &out)
	return out, err
}

// Rainfall lấy danh sách lượng mưa ngày
func (c *WaterClient) Rainfall(ctx context.Context, limit int) ([]waterdto.RainfallSummaryDTO, error) {
	var out []waterdto.RainfallSummaryDTO
	err := c.getJSON(ctx, "/rainfall", limitQuery(limit), &out)
	return out, err
}

// FloodAlerts lấy toàn bộ cảnh báo lũ
func (c *WaterClient) FloodAlerts(ctx context.Context) ([]waterdto.FloodAlertDTO, error) {
	var out []waterdto.FloodAlertDTO
	err := c.getJSON(ctx, "/flood-alerts", nil, &out)
	return out, err
}

// Projects lấy danh sách dự án
func (c *WaterClient) Projects(ctx context.Context, limit int) ([]waterdto.WaterProjectDTO, error) {
	var out []waterdto.WaterProjectDTO
	err := c.getJSON(ctx, "/projects", limitQuery(limit), &out)
	return out, err
}

// Dashboard lấy thống kê tổng hợp
func (c *WaterClient) Dashboard(ctx context.Context) (waterdto.DashboardHighlights, error) {
	var out waterdto.DashboardHighlights
	err := c.getJSON(ctx, "/dashboard", nil, &out)
	return out, err
}

// FetchAll gọi cả sáu endpoint song song với cùng một context hủy.
// Thành công: thay kết quả vào state, riêng mảng rỗng được thay bằng
// dataset dự phòng (coi "rỗng" là "chưa seed" chứ không phải "thực sự
// không có dữ liệu"). Bất kỳ request nào lỗi (kể cả bị hủy): giữ nguyên
// toàn bộ dataset dự phòng và gắn thông báo lỗi tĩnh; không bao giờ
// trả lỗi ra ngoài.
func (c *WaterClient) FetchAll(ctx context.Context) WaterData {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		reservoirs []waterdto.ReservoirLevelDTO
		discharges []waterdto.BasinDischargeDTO
		rainfall   []waterdto.RainfallSummaryDTO
		alerts     []waterdto.FloodAlertDTO
		projects   []waterdto.WaterProjectDTO
		dashboard  waterdto.DashboardHighlights
	)

	var wg sync.WaitGroup
	errs := make([]error, 6)

	wg.Add(6)
	go func() { defer wg.Done(); reservoirs, errs[0] = c.ReservoirLevels(ctx, 6) }()
	go func() { defer wg.Done(); discharges, errs[1] = c.BasinDischarges(ctx, 12) }()
	go func() { defer wg.Done(); rainfall, errs[2] = c.Rainfall(ctx, 8) }()
	go func() { defer wg.Done(); alerts, errs[3] = c.FloodAlerts(ctx) }()
	go func() { defer wg.Done(); projects, errs[4] = c.Projects(ctx, 6) }()
	go func() { defer wg.Done(); dashboard, errs[5] = c.Dashboard(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			// Hủy các request còn treo rồi rơi về toàn bộ dataset dự phòng
			cancel()
			data := FallbackData()
			data.Err = ErrFallbackMessage
			return data
		}
	}

	fallback := FallbackData()
	data := WaterData{
		Reservoirs: reservoirs,
		Discharges: discharges,
		Rainfall:   rainfall,
		Alerts:     alerts,
		Projects:   projects,
		Dashboard:  dashboard,
	}
	if len(data.Reservoirs) == 0 {
		data.Reservoirs = fallback.Reservoirs
	}
	if len(data.Discharges) == 0 {
		data.Discharges = fallback.Discharges
	}
	if len(data.Rainfall) == 0 {
		data.Rainfall = fallback.Rainfall
	}
	if len(data.Alerts) == 0 {
		data.Alerts = fallback.Alerts
	}
	if len(data.Projects) == 0 {
		data.Projects = fallback.Projects
	}
	// Body "null" decode thành zero value, coi như dashboard chưa có số liệu
	if data.Dashboard == (waterdto.DashboardHighlights{}) {
		data.Dashboard = fallback.Dashboard
	}
	return data
}
