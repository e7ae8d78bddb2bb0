package watersvc

import (
	"fmt"
	"math"
	"time"

	"cwc_water/internal/api/water/models"
)

// Các builder sinh tích chéo template × ngày thành document mẫu.
// Mọi giá trị số đều đi qua SeededNumber với khóa "<định danh>-<ngày>-<trường>"
// nên một bộ (entity, ngày, trường) luôn ánh xạ về đúng một giá trị.

// BuildReservoirDocs sinh document mực nước hồ chứa cho từng hồ × từng ngày.
func BuildReservoirDocs(dates []string, templates []ReservoirTemplate, sourceTag string) []models.ReservoirLevel {
	docs := make([]models.ReservoirLevel, 0, len(dates)*len(templates))
	for _, date := range dates {
		for _, template := range templates {
			storage := SeededNumber(
				template.LiveCapacityTMC*0.45,
				template.LiveCapacityTMC*0.95,
				fmt.Sprintf("%s-%s-storage", template.ReservoirName, date),
				2,
			)
			waterLevel := SeededNumber(
				template.FullReservoirLevelM*0.6,
				template.FullReservoirLevelM*0.99,
				fmt.Sprintf("%s-%s-level", template.ReservoirName, date),
				2,
			)
			inflow := int(math.Round(SeededNumber(500, 6000, fmt.Sprintf("%s-%s-inflow", template.ReservoirName, date), 3)))
			outflow := int(math.Round(SeededNumber(400, 4500, fmt.Sprintf("%s-%s-outflow", template.ReservoirName, date), 3)))

			docs = append(docs, models.ReservoirLevel{
				ReservoirName:       template.ReservoirName,
				Basin:               template.Basin,
				River:               template.River,
				State:               template.State,
				LiveCapacityTMC:     template.LiveCapacityTMC,
				FullReservoirLevelM: template.FullReservoirLevelM,
				Date:                date,
				LiveStorageTMC:      storage,
				PercentLiveStorage:  RoundTo(storage/template.LiveCapacityTMC*100, 2),
				WaterLevelMeters:    waterLevel,
				InflowCusecs:        inflow,
				OutflowCusecs:       outflow,
				NetInflowCusecs:     inflow - outflow,
				SourceTag:           sourceTag,
			})
		}
	}
	return docs
}

// BuildDischargeDocs sinh document lưu lượng cho từng trạm × từng ngày.
// Trạng thái được suy ra từ hai ngưỡng của trạm.
func BuildDischargeDocs(dates []string, stations []BasinStationTemplate, sourceTag string) []models.BasinDischarge {
	docs := make([]models.BasinDischarge, 0, len(dates)*len(stations))
	for _, date := range dates {
		for _, station := range stations {
			discharge := int(math.Round(SeededNumber(800, 7500, fmt.Sprintf("%s-%s-discharge", station.Station, date), 3)))

			docs = append(docs, models.BasinDischarge{
				Basin:             station.Basin,
				Station:           station.Station,
				River:             station.River,
				State:             station.State,
				AlertLevelCumecs:  station.AlertLevelCumecs,
				DangerLevelCumecs: station.DangerLevelCumecs,
				Date:              date,
				DischargeCumecs:   discharge,
				Status:            models.DeriveDischargeStatus(float64(discharge), station.AlertLevelCumecs, station.DangerLevelCumecs),
				DeviationPercent:  RoundTo(SeededNumber(-25, 45, fmt.Sprintf("%s-%s-deviation", station.Station, date), 2), 1),
				SourceTag:         sourceTag,
			})
		}
	}
	return docs
}

// BuildRainfallDocs sinh document lượng mưa cho từng vùng × từng ngày.
func BuildRainfallDocs(dates []string, stations []RainfallStationTemplate, sourceTag string) []models.RainfallSummary {
	docs := make([]models.RainfallSummary, 0, len(dates)*len(stations))
	for _, date := range dates {
		for _, station := range stations {
			rainfall := SeededNumber(0, 120, fmt.Sprintf("%s-%s-rain", station.District, date), 2)

			docs = append(docs, models.RainfallSummary{
				Region:                     station.Region,
				State:                      station.State,
				District:                   station.District,
				Date:                       date,
				RainfallMm:                 rainfall,
				DepartureFromNormalPercent: SeededNumber(-80, 120, fmt.Sprintf("%s-%s-departure", station.District, date), 2),
				Category:                   models.DeriveRainfallCategory(rainfall),
				SourceTag:                  sourceTag,
			})
		}
	}
	return docs
}

// BuildFloodAlerts sinh cảnh báo lũ từ nội dung tĩnh. Không theo cửa sổ ngày;
// ngày đỉnh lũ dự kiến dịch theo chỉ số của cảnh báo.
func BuildFloodAlerts(now time.Time, seeds []FloodAlertSeed, sourceTag string) []models.FloodAlert {
	docs := make([]models.FloodAlert, 0, len(seeds))
	for idx, seed := range seeds {
		advisory := ""
		if idx < len(alertAdvisories) {
			advisory = alertAdvisories[idx]
		}
		docs = append(docs, models.FloodAlert{
			Basin:            seed.Basin,
			Location:         seed.Location,
			Severity:         seed.Severity,
			Impact:           seed.Impact,
			Advisory:         advisory,
			LastUpdatedAt:    ToISODate(now),
			ExpectedPeakDate: ToISODate(now.AddDate(0, 0, idx+1)),
			SourceTag:        sourceTag,
		})
	}
	return docs
}

// BuildProjectStats sinh trạng thái dự án từ nội dung tĩnh, mốc kế tiếp
// và năm vận hành biến thiên theo chỉ số.
func BuildProjectStats(seeds []WaterProjectSeed, sourceTag string) []models.WaterProject {
	docs := make([]models.WaterProject, 0, len(seeds))
	for idx, seed := range seeds {
		milestone := "Contract award"
		issues := []string{"Environmental clearance under appraisal"}
		if idx%2 == 0 {
			milestone = "SCADA hardware delivery"
			issues = []string{"Land acquisition pending", "Need revised DPR"}
		}
		docs = append(docs, models.WaterProject{
			ProjectName:       seed.ProjectName,
			Basin:             seed.Basin,
			State:             seed.State,
			Phase:             seed.Phase,
			BudgetCrore:       seed.BudgetCrore,
			CompletionPercent: seed.CompletionPercent,
			BeneficiariesLakh: seed.BeneficiariesLakh,
			CommissionYear:    2026 + idx,
			NextMilestone:     milestone,
			Issues:            issues,
			SourceTag:         sourceTag,
		})
	}
	return docs
}
