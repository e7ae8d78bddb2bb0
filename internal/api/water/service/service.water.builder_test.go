// Package watersvc - Test các builder sinh document mẫu: đúng số lượng,
// đúng bất biến dẫn xuất (percent, status, category) và lặp lại được.
package watersvc

import (
	"testing"
	"time"

	"cwc_water/internal/api/water/models"
	"cwc_water/internal/global"
)

const testSourceTag = "seed-test"

func testDates() []string {
	return BuildDateWindow(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), 3)
}

func TestBuildReservoirDocs_CardinalityAndInvariants(t *testing.T) {
	dates := testDates()
	docs := BuildReservoirDocs(dates, ReservoirTemplates, testSourceTag)

	wantLen := len(dates) * len(ReservoirTemplates)
	if len(docs) != wantLen {
		t.Fatalf("BuildReservoirDocs sinh %d document, muốn %d (ngày × hồ)", len(docs), wantLen)
	}

	for _, doc := range docs {
		if doc.SourceTag != testSourceTag {
			t.Errorf("hồ %s ngày %s có sourceTag %q, muốn %q", doc.ReservoirName, doc.Date, doc.SourceTag, testSourceTag)
		}
		lo, hi := doc.LiveCapacityTMC*0.45, doc.LiveCapacityTMC*0.95
		if doc.LiveStorageTMC < lo || doc.LiveStorageTMC > hi {
			t.Errorf("hồ %s ngày %s: liveStorageTMC=%v ngoài khoảng [%v, %v]",
				doc.ReservoirName, doc.Date, doc.LiveStorageTMC, lo, hi)
		}
		// percentLiveStorage phải tính lại được từ storage và capacity
		want := RoundTo(doc.LiveStorageTMC/doc.LiveCapacityTMC*100, 2)
		if doc.PercentLiveStorage != want {
			t.Errorf("hồ %s ngày %s: percentLiveStorage=%v, tính lại từ storage là %v",
				doc.ReservoirName, doc.Date, doc.PercentLiveStorage, want)
		}
		if doc.NetInflowCusecs != doc.InflowCusecs-doc.OutflowCusecs {
			t.Errorf("hồ %s ngày %s: netInflow=%d nhưng inflow-outflow=%d",
				doc.ReservoirName, doc.Date, doc.NetInflowCusecs, doc.InflowCusecs-doc.OutflowCusecs)
		}
	}
}

func TestBuildReservoirDocs_Repeatable(t *testing.T) {
	dates := testDates()
	first := BuildReservoirDocs(dates, ReservoirTemplates, testSourceTag)
	second := BuildReservoirDocs(dates, ReservoirTemplates, testSourceTag)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("hai lần build với cùng đầu vào lệch nhau tại index %d: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestBuildDischargeDocs_StatusFollowsThresholds(t *testing.T) {
	dates := testDates()
	docs := BuildDischargeDocs(dates, BasinStations, testSourceTag)

	wantLen := len(dates) * len(BasinStations)
	if len(docs) != wantLen {
		t.Fatalf("BuildDischargeDocs sinh %d document, muốn %d (ngày × trạm)", len(docs), wantLen)
	}

	for _, doc := range docs {
		want := models.DeriveDischargeStatus(float64(doc.DischargeCumecs), doc.AlertLevelCumecs, doc.DangerLevelCumecs)
		if doc.Status != want {
			t.Errorf("trạm %s ngày %s: discharge=%d cho status %q, muốn %q",
				doc.Station, doc.Date, doc.DischargeCumecs, doc.Status, want)
		}
		if doc.DischargeCumecs < 800 || doc.DischargeCumecs > 7500 {
			t.Errorf("trạm %s ngày %s: discharge=%d ngoài khoảng [800, 7500]", doc.Station, doc.Date, doc.DischargeCumecs)
		}
	}
}

func TestDeriveDischargeStatus_Boundaries(t *testing.T) {
	cases := []struct {
		discharge, alert, danger float64
		want                     models.DischargeStatus
	}{
		{3999, 4000, 5500, models.DischargeStatusNormal},
		{4000, 4000, 5500, models.DischargeStatusAlert},
		{5499, 4000, 5500, models.DischargeStatusAlert},
		{5500, 4000, 5500, models.DischargeStatusDanger},
	}
	for _, tc := range cases {
		if got := models.DeriveDischargeStatus(tc.discharge, tc.alert, tc.danger); got != tc.want {
			t.Errorf("DeriveDischargeStatus(%v, %v, %v) = %q, muốn %q", tc.discharge, tc.alert, tc.danger, got, tc.want)
		}
	}
}

func TestBuildRainfallDocs_CategoryFollowsRainfall(t *testing.T) {
	dates := testDates()
	docs := BuildRainfallDocs(dates, RainfallStations, testSourceTag)

	wantLen := len(dates) * len(RainfallStations)
	if len(docs) != wantLen {
		t.Fatalf("BuildRainfallDocs sinh %d document, muốn %d (ngày × vùng)", len(docs), wantLen)
	}
	for _, doc := range docs {
		if want := models.DeriveRainfallCategory(doc.RainfallMm); doc.Category != want {
			t.Errorf("vùng %s ngày %s: rainfallMm=%v cho category %q, muốn %q",
				doc.District, doc.Date, doc.RainfallMm, doc.Category, want)
		}
		if doc.DepartureFromNormalPercent < -80 || doc.DepartureFromNormalPercent > 120 {
			t.Errorf("vùng %s ngày %s: departure=%v ngoài khoảng [-80, 120]",
				doc.District, doc.Date, doc.DepartureFromNormalPercent)
		}
	}
}

func TestDeriveRainfallCategory_Boundaries(t *testing.T) {
	cases := []struct {
		mm   float64
		want models.RainfallCategory
	}{
		{0, models.RainfallCategoryDry},
		{0.01, models.RainfallCategoryLight},
		{14.99, models.RainfallCategoryLight},
		{15, models.RainfallCategoryModerate},
		{64.99, models.RainfallCategoryModerate},
		{65, models.RainfallCategoryHeavy},
		{120, models.RainfallCategoryHeavy},
	}
	for _, tc := range cases {
		if got := models.DeriveRainfallCategory(tc.mm); got != tc.want {
			t.Errorf("DeriveRainfallCategory(%v) = %q, muốn %q", tc.mm, got, tc.want)
		}
	}
}

func TestBuildFloodAlerts_DatesShiftByIndex(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	docs := BuildFloodAlerts(now, FloodAlertSeeds, testSourceTag)

	if len(docs) != len(FloodAlertSeeds) {
		t.Fatalf("BuildFloodAlerts sinh %d cảnh báo, muốn %d", len(docs), len(FloodAlertSeeds))
	}
	for idx, doc := range docs {
		if doc.LastUpdatedAt != "2026-08-31" {
			t.Errorf("cảnh báo %d: lastUpdatedAt=%q, muốn 2026-08-31", idx, doc.LastUpdatedAt)
		}
		wantPeak := ToISODate(now.AddDate(0, 0, idx+1))
		if doc.ExpectedPeakDate != wantPeak {
			t.Errorf("cảnh báo %d: expectedPeakDate=%q, muốn %q", idx, doc.ExpectedPeakDate, wantPeak)
		}
		if doc.Advisory == "" {
			t.Errorf("cảnh báo %d thiếu advisory", idx)
		}
	}
}

func TestBuildProjectStats_CommissionYearAndMilestones(t *testing.T) {
	docs := BuildProjectStats(WaterProjectSeeds, testSourceTag)
	if len(docs) != len(WaterProjectSeeds) {
		t.Fatalf("BuildProjectStats sinh %d dự án, muốn %d", len(docs), len(WaterProjectSeeds))
	}
	for idx, doc := range docs {
		if doc.CommissionYear != 2026+idx {
			t.Errorf("dự án %d: commissionYear=%d, muốn %d", idx, doc.CommissionYear, 2026+idx)
		}
		if idx%2 == 0 && doc.NextMilestone != "SCADA hardware delivery" {
			t.Errorf("dự án %d (chẵn): nextMilestone=%q", idx, doc.NextMilestone)
		}
		if idx%2 == 1 && doc.NextMilestone != "Contract award" {
			t.Errorf("dự án %d (lẻ): nextMilestone=%q", idx, doc.NextMilestone)
		}
		if len(doc.Issues) == 0 {
			t.Errorf("dự án %d không có issues", idx)
		}
	}
}

func TestValidateTemplates_CatchesInvertedThresholds(t *testing.T) {
	global.InitValidator()

	if err := ValidateTemplates(); err != nil {
		t.Fatalf("ValidateTemplates báo lỗi trên metadata chuẩn: %v", err)
	}

	bad := BasinStationTemplate{
		Basin:             "Ganga",
		Station:           "Trạm test",
		River:             "Ganga",
		State:             "Bihar",
		AlertLevelCumecs:  5000,
		DangerLevelCumecs: 4000, // đảo ngưỡng
	}
	if err := global.Validate.Struct(bad); err == nil {
		t.Error("trạm có dangerLevel <= alertLevel phải bị validator từ chối")
	}
}
