// Package client - Test chu kỳ fetch: server sống trả dữ liệu thật,
// server chết rơi về dataset dự phòng, mảng rỗng bị thay bằng bản dự phòng.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	waterdto "cwc_water/internal/api/water/dto"
)

// newTestServer dựng một server giả phục vụ cả sáu endpoint với payload cho trước.
func newTestServer(t *testing.T, payloads map[string]interface{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, payload := range payloads {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("không marshal được payload cho %s: %v", path, err)
		}
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write(body)
		})
	}
	return httptest.NewServer(mux)
}

func fullPayloads() map[string]interface{} {
	return map[string]interface{}{
		"/reservoir-levels": []waterdto.ReservoirLevelDTO{{Id: "r1"}},
		"/basin-discharges": []waterdto.BasinDischargeDTO{{Id: "d1"}, {Id: "d2"}},
		"/rainfall":         []waterdto.RainfallSummaryDTO{{Id: "rf1"}},
		"/flood-alerts":     []waterdto.FloodAlertDTO{{Id: "a1"}},
		"/projects":         []waterdto.WaterProjectDTO{{Id: "p1"}},
		"/dashboard": waterdto.DashboardHighlights{
			TotalStations:   1248,
			ActiveAlerts:    1,
			RiversMonitored: 2,
		},
	}
}

func TestFetchAll_LiveServer(t *testing.T) {
	srv := newTestServer(t, fullPayloads())
	defer srv.Close()

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(context.Background())

	assert.Empty(t, data.Err, "server sống thì không được gắn thông báo dự phòng")
	assert.Len(t, data.Reservoirs, 1)
	assert.Len(t, data.Discharges, 2)
	assert.Equal(t, "r1", data.Reservoirs[0].Id)
	assert.Equal(t, 1248, data.Dashboard.TotalStations)
}

func TestFetchAll_UnreachableServerFallsBack(t *testing.T) {
	// Server đóng ngay nên mọi request đều lỗi kết nối
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(context.Background())

	assert.Equal(t, ErrFallbackMessage, data.Err)
	fallback := FallbackData()
	assert.Equal(t, len(fallback.Reservoirs), len(data.Reservoirs))
	assert.Equal(t, len(fallback.Discharges), len(data.Discharges))
	assert.Equal(t, len(fallback.Rainfall), len(data.Rainfall))
	assert.Equal(t, len(fallback.Alerts), len(data.Alerts))
	assert.Equal(t, len(fallback.Projects), len(data.Projects))
	assert.Equal(t, fallback.Dashboard, data.Dashboard)
}

func TestFetchAll_OneEndpointFailingFallsBackEntirely(t *testing.T) {
	payloads := fullPayloads()
	delete(payloads, "/dashboard")
	srv := newTestServer(t, payloads)
	defer srv.Close()

	mux, ok := srv.Config.Handler.(*http.ServeMux)
	if !ok {
		t.Fatal("handler của test server phải là ServeMux")
	}
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"internal error"}`, http.StatusInternalServerError)
	})

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(context.Background())

	// Một endpoint lỗi làm rơi toàn bộ về bản dự phòng, không trộn nửa thật nửa mẫu
	assert.Equal(t, ErrFallbackMessage, data.Err)
	assert.Equal(t, len(FallbackData().Reservoirs), len(data.Reservoirs))
}

func TestFetchAll_EmptyArraysSubstituted(t *testing.T) {
	payloads := map[string]interface{}{
		"/reservoir-levels": []waterdto.ReservoirLevelDTO{},
		"/basin-discharges": []waterdto.BasinDischargeDTO{{Id: "d1"}},
		"/rainfall":         []waterdto.RainfallSummaryDTO{},
		"/flood-alerts":     []waterdto.FloodAlertDTO{},
		"/projects":         []waterdto.WaterProjectDTO{},
		"/dashboard":        waterdto.DashboardHighlights{TotalStations: 1248},
	}
	srv := newTestServer(t, payloads)
	defer srv.Close()

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(context.Background())

	fallback := FallbackData()
	assert.Empty(t, data.Err, "mảng rỗng là thay thế im lặng, không phải trạng thái lỗi")
	assert.Equal(t, len(fallback.Reservoirs), len(data.Reservoirs), "mảng rỗng phải được thay bằng bản dự phòng")
	assert.Len(t, data.Discharges, 1, "mảng có dữ liệu giữ nguyên")
	assert.Equal(t, "d1", data.Discharges[0].Id)
	assert.Equal(t, 1248, data.Dashboard.TotalStations, "dashboard không bị thay thế theo cơ chế mảng rỗng")
}

func TestFetchAll_NullDashboardSubstituted(t *testing.T) {
	payloads := fullPayloads()
	payloads["/dashboard"] = nil // server trả body "null"
	srv := newTestServer(t, payloads)
	defer srv.Close()

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(context.Background())

	fallback := FallbackData()
	assert.Empty(t, data.Err, "dashboard null là thay thế im lặng, không phải trạng thái lỗi")
	assert.Equal(t, fallback.Dashboard, data.Dashboard, "dashboard rỗng phải được thay bằng bản dự phòng")
	assert.NotZero(t, data.Dashboard.TotalStations)
	assert.Len(t, data.Reservoirs, 1, "các dataset còn lại giữ nguyên dữ liệu server")
}

func TestFetchAll_ContextCancelledFallsBack(t *testing.T) {
	srv := newTestServer(t, fullPayloads())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewWaterClient(srv.URL)
	data := c.FetchAll(ctx)

	assert.Equal(t, ErrFallbackMessage, data.Err)
}

func TestFallbackData_ReturnsFreshCopies(t *testing.T) {
	first := FallbackData()
	first.Reservoirs[0].ReservoirName = "đã sửa"

	second := FallbackData()
	assert.NotEqual(t, "đã sửa", second.Reservoirs[0].ReservoirName,
		"FallbackData phải trả về bản sao mới, caller sửa không được lan sang lần gọi sau")
}
