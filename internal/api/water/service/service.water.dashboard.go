package watersvc

import (
	"context"
	"math"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"

	waterdto "cwc_water/internal/api/water/dto"
	"cwc_water/internal/api/water/models"
)

// dashboardSampleCap - số document tối đa lấy từ mỗi collection khi tổng hợp.
// Số liệu dashboard là xấp xỉ trên một mẫu chặn, không phải toàn collection.
const dashboardSampleCap = 20

// TotalStations - tổng số trạm quan trắc toàn quốc (hằng hiển thị, không suy từ dữ liệu)
const TotalStations = 1248

// GetDashboard lấy mẫu dữ liệu từ bốn collection song song rồi tính các
// thống kê tổng hợp. Một truy vấn con lỗi sẽ làm hỏng cả request,
// không có tổng hợp một phần.
func (s *QueryService) GetDashboard(ctx context.Context) (waterdto.DashboardHighlights, error) {
	var (
		reservoirDocs []models.ReservoirLevel
		dischargeDocs []models.BasinDischarge
		rainfallDocs  []models.RainfallSummary
		alertCount    int64
	)

	sampleOpts := func() *options.FindOptions {
		return options.Find().SetLimit(dashboardSampleCap)
	}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		reservoirDocs, errs[0] = s.reservoirs.Find(ctx, s.tagFilter(), sampleOpts())
	}()
	go func() {
		defer wg.Done()
		dischargeDocs, errs[1] = s.discharges.Find(ctx, s.tagFilter(), sampleOpts())
	}()
	go func() {
		defer wg.Done()
		rainfallDocs, errs[2] = s.rainfall.Find(ctx, s.tagFilter(), sampleOpts())
	}()
	go func() {
		defer wg.Done()
		alertCount, errs[3] = s.alerts.CountDocuments(ctx, s.tagFilter())
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return waterdto.DashboardHighlights{}, err
		}
	}

	return ComputeDashboard(reservoirDocs, dischargeDocs, rainfallDocs, int(alertCount), time.Now()), nil
}

// ComputeDashboard tính thống kê tổng hợp từ các mẫu đã lấy.
// Trung bình làm tròn về số nguyên gần nhất, mẫu rỗng cho 0
// (mẫu số được chặn dưới bởi 1).
func ComputeDashboard(
	reservoirs []models.ReservoirLevel,
	discharges []models.BasinDischarge,
	rainfall []models.RainfallSummary,
	alertCount int,
	now time.Time,
) waterdto.DashboardHighlights {
	var storageSum float64
	for _, doc := range reservoirs {
		storageSum += doc.PercentLiveStorage
	}
	avgStorage := int(math.Round(storageSum / math.Max(float64(len(reservoirs)), 1)))

	var departureSum float64
	for _, doc := range rainfall {
		departureSum += doc.DepartureFromNormalPercent
	}
	avgDeparture := int(math.Round(departureSum / math.Max(float64(len(rainfall)), 1)))

	rivers := map[string]struct{}{}
	for _, doc := range discharges {
		rivers[doc.River] = struct{}{}
	}

	return waterdto.DashboardHighlights{
		TotalStations:        TotalStations,
		ActiveAlerts:         alertCount,
		RiversMonitored:      len(rivers),
		LastUpdated:          now.UTC().Format(time.RFC3339),
		AvgReservoirStorage:  avgStorage,
		AvgRainfallDeparture: avgDeparture,
	}
}
