// Package watersvc - Test phần tính toán thuần của dashboard tổng hợp.
package watersvc

import (
	"testing"
	"time"

	"cwc_water/internal/api/water/models"
)

func TestComputeDashboard_RoundedAverages(t *testing.T) {
	reservoirs := []models.ReservoirLevel{
		{River: "Bhagirathi", PercentLiveStorage: 80},
		{River: "Satluj", PercentLiveStorage: 90},
	}
	rainfall := []models.RainfallSummary{
		{DepartureFromNormalPercent: 10},
		{DepartureFromNormalPercent: -5},
		{DepartureFromNormalPercent: 4},
	}
	discharges := []models.BasinDischarge{
		{River: "Ganga"},
		{River: "Brahmaputra"},
		{River: "Ganga"}, // trùng, chỉ đếm một lần
	}
	now := time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC)

	got := ComputeDashboard(reservoirs, discharges, rainfall, 3, now)

	if got.AvgReservoirStorage != 85 {
		t.Errorf("avgReservoirStorage = %d, muốn 85 ((80+90)/2)", got.AvgReservoirStorage)
	}
	if got.AvgRainfallDeparture != 3 {
		t.Errorf("avgRainfallDeparture = %d, muốn 3 (9/3)", got.AvgRainfallDeparture)
	}
	if got.RiversMonitored != 2 {
		t.Errorf("riversMonitored = %d, muốn 2 sông phân biệt", got.RiversMonitored)
	}
	if got.ActiveAlerts != 3 {
		t.Errorf("activeAlerts = %d, muốn 3", got.ActiveAlerts)
	}
	if got.TotalStations != TotalStations {
		t.Errorf("totalStations = %d, muốn hằng %d", got.TotalStations, TotalStations)
	}
	if got.LastUpdated != "2026-08-31T06:30:00Z" {
		t.Errorf("lastUpdated = %q, muốn RFC3339 UTC", got.LastUpdated)
	}
}

func TestComputeDashboard_EmptySamples(t *testing.T) {
	got := ComputeDashboard(nil, nil, nil, 0, time.Now())
	// Mẫu rỗng không được gây chia cho 0; trung bình là 0
	if got.AvgReservoirStorage != 0 {
		t.Errorf("avgReservoirStorage = %d trên mẫu rỗng, muốn 0", got.AvgReservoirStorage)
	}
	if got.AvgRainfallDeparture != 0 {
		t.Errorf("avgRainfallDeparture = %d trên mẫu rỗng, muốn 0", got.AvgRainfallDeparture)
	}
	if got.RiversMonitored != 0 {
		t.Errorf("riversMonitored = %d trên mẫu rỗng, muốn 0", got.RiversMonitored)
	}
	if got.TotalStations != TotalStations {
		t.Errorf("totalStations = %d, hằng hiển thị không phụ thuộc dữ liệu", got.TotalStations)
	}
}

func TestComputeDashboard_HalfAwayFromZeroAverage(t *testing.T) {
	reservoirs := []models.ReservoirLevel{
		{River: "a", PercentLiveStorage: 85},
		{River: "b", PercentLiveStorage: 86},
	}
	got := ComputeDashboard(reservoirs, nil, nil, 0, time.Now())
	// (85+86)/2 = 85.5, làm tròn half away from zero thành 86
	if got.AvgReservoirStorage != 86 {
		t.Errorf("avgReservoirStorage = %d, muốn 86 (85.5 làm tròn lên)", got.AvgReservoirStorage)
	}
}

func TestSortAlertsBySeverity_RankOrder(t *testing.T) {
	alerts := []models.FloodAlert{
		{Location: "Patna", Severity: models.AlertSeverityWatch},
		{Location: "Kaziranga", Severity: models.AlertSeverityWarning},
		{Location: "Bhadrachalam", Severity: models.AlertSeverityAlert},
	}
	SortAlertsBySeverity(alerts)

	want := []models.AlertSeverity{
		models.AlertSeverityWarning,
		models.AlertSeverityAlert,
		models.AlertSeverityWatch,
	}
	for i, severity := range want {
		if alerts[i].Severity != severity {
			t.Errorf("alerts[%d].Severity = %q, muốn %q (warning > alert > watch)", i, alerts[i].Severity, severity)
		}
	}
}

func TestSortAlertsBySeverity_StableWithinRank(t *testing.T) {
	alerts := []models.FloodAlert{
		{Location: "A", Severity: models.AlertSeverityAlert},
		{Location: "B", Severity: models.AlertSeverityAlert},
		{Location: "C", Severity: models.AlertSeverityWarning},
	}
	SortAlertsBySeverity(alerts)
	if alerts[0].Location != "C" {
		t.Fatalf("cảnh báo warning phải đứng đầu, được %q", alerts[0].Location)
	}
	// Cùng hạng giữ nguyên thứ tự gốc
	if alerts[1].Location != "A" || alerts[2].Location != "B" {
		t.Errorf("thứ tự trong cùng hạng không ổn định: %q, %q", alerts[1].Location, alerts[2].Location)
	}
}
