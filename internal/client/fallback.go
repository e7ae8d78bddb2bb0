package client

import (
	waterdto "cwc_water/internal/api/water/dto"
	"cwc_water/internal/api/water/models"
)

// FallbackData trả về dataset mẫu đóng gói sẵn, dùng khi API không khả dụng
// hoặc một collection chưa được seed. Mỗi lần gọi trả về bản sao mới để
// caller không làm bẩn dữ liệu gốc.
func FallbackData() WaterData {
	return WaterData{
		Reservoirs: fallbackReservoirs(),
		Discharges: fallbackDischarges(),
		Rainfall:   fallbackRainfall(),
		Alerts:     fallbackAlerts(),
		Projects:   fallbackProjects(),
		Dashboard: waterdto.DashboardHighlights{
			TotalStations:        1248,
			ActiveAlerts:         3,
			RiversMonitored:      89,
			LastUpdated:          "5 min ago",
			AvgReservoirStorage:  86,
			AvgRainfallDeparture: 1,
		},
	}
}

func fallbackReservoirs() []waterdto.ReservoirLevelDTO {
	build := func(id string, m models.ReservoirLevel) waterdto.ReservoirLevelDTO {
		m.NetInflowCusecs = m.InflowCusecs - m.OutflowCusecs
		return waterdto.ReservoirLevelDTO{Id: id, ReservoirLevel: m}
	}
	return []waterdto.ReservoirLevelDTO{
		build("tehri-2025-11-20", models.ReservoirLevel{
			ReservoirName: "Tehri", Basin: "Ganga", State: "Uttarakhand", Date: "2025-11-20",
			LiveStorageTMC: 64.2, PercentLiveStorage: 90.4, WaterLevelMeters: 824.3,
			InflowCusecs: 4120, OutflowCusecs: 3865,
		}),
		build("bhakra-2025-11-20", models.ReservoirLevel{
			ReservoirName: "Bhakra", Basin: "Satluj", State: "Himachal Pradesh", Date: "2025-11-20",
			LiveStorageTMC: 61.7, PercentLiveStorage: 85.2, WaterLevelMeters: 506.1,
			InflowCusecs: 3525, OutflowCusecs: 3140,
		}),
		build("hirakud-2025-11-20", models.ReservoirLevel{
			ReservoirName: "Hirakud", Basin: "Mahanadi", State: "Odisha", Date: "2025-11-20",
			LiveStorageTMC: 52.8, PercentLiveStorage: 76.8, WaterLevelMeters: 188.7,
			InflowCusecs: 4980, OutflowCusecs: 4210,
		}),
		build("sardar-sarovar-2025-11-20", models.ReservoirLevel{
			ReservoirName: "Sardar Sarovar", Basin: "Narmada", State: "Gujarat", Date: "2025-11-20",
			LiveStorageTMC: 139.1, PercentLiveStorage: 89.7, WaterLevelMeters: 134.5,
			InflowCusecs: 6020, OutflowCusecs: 5780,
		}),
		build("nagarjuna-2025-11-20", models.ReservoirLevel{
			ReservoirName: "Nagarjuna Sagar", Basin: "Krishna", State: "Telangana", Date: "2025-11-20",
			LiveStorageTMC: 271.5, PercentLiveStorage: 86.9, WaterLevelMeters: 172.8,
			InflowCusecs: 7150, OutflowCusecs: 6890,
		}),
	}
}

func fallbackDischarges() []waterdto.BasinDischargeDTO {
	build := func(id string, m models.BasinDischarge) waterdto.BasinDischargeDTO {
		return waterdto.BasinDischargeDTO{Id: id, BasinDischarge: m}
	}
	return []waterdto.BasinDischargeDTO{
		build("ganga-hardinge", models.BasinDischarge{
			Basin: "Ganga", Station: "Hardinge Bridge", River: "Ganga", State: "Uttar Pradesh",
			Date: "2025-11-20", DischargeCumecs: 5380, Status: models.DischargeStatusAlert, DeviationPercent: 18.4,
		}),
		build("brahmaputra-dibrugarh", models.BasinDischarge{
			Basin: "Brahmaputra", Station: "Dibrugarh", River: "Brahmaputra", State: "Assam",
			Date: "2025-11-20", DischargeCumecs: 6725, Status: models.DischargeStatusDanger, DeviationPercent: 27.1,
		}),
		build("godavari-polavaram", models.BasinDischarge{
			Basin: "Godavari", Station: "Polavaram", River: "Godavari", State: "Andhra Pradesh",
			Date: "2025-11-20", DischargeCumecs: 4260, Status: models.DischargeStatusAlert, DeviationPercent: 12.9,
		}),
		build("narmada-garudeshwar", models.BasinDischarge{
			Basin: "Narmada", Station: "Garudeshwar", River: "Narmada", State: "Gujarat",
			Date: "2025-11-20", DischargeCumecs: 2985, Status: models.DischargeStatusNormal, DeviationPercent: -3.8,
		}),
		build("krishna-vijayawada", models.BasinDischarge{
			Basin: "Krishna", Station: "Vijayawada Barrage", River: "Krishna", State: "Andhra Pradesh",
			Date: "2025-11-20", DischargeCumecs: 5140, Status: models.DischargeStatusAlert, DeviationPercent: 15.2,
		}),
		build("mahanadi-cuttack", models.BasinDischarge{
			Basin: "Mahanadi", Station: "Naraj Cuttack", River: "Mahanadi", State: "Odisha",
			Date: "2025-11-20", DischargeCumecs: 3625, Status: models.DischargeStatusAlert, DeviationPercent: 9.4,
		}),
		build("tapi-burhanpur", models.BasinDischarge{
			Basin: "Tapi", Station: "Burhanpur", River: "Tapi", State: "Madhya Pradesh",
			Date: "2025-11-20", DischargeCumecs: 2110, Status: models.DischargeStatusNormal, DeviationPercent: -6.3,
		}),
		build("cauvery-mettur", models.BasinDischarge{
			Basin: "Cauvery", Station: "Mettur", River: "Cauvery", State: "Tamil Nadu",
			Date: "2025-11-20", DischargeCumecs: 2880, Status: models.DischargeStatusDanger, DeviationPercent: 24.7,
		}),
		build("yamuna-okhla", models.BasinDischarge{
			Basin: "Yamuna", Station: "Okhla Barrage", River: "Yamuna", State: "Delhi",
			Date: "2025-11-20", DischargeCumecs: 2540, Status: models.DischargeStatusAlert, DeviationPercent: 11.5,
		}),
		build("sabarmati-dharoi", models.BasinDischarge{
			Basin: "Sabarmati", Station: "Dharoi", River: "Sabarmati", State: "Gujarat",
			Date: "2025-11-20", DischargeCumecs: 1780, Status: models.DischargeStatusNormal, DeviationPercent: 2.1,
		}),
		build("periyar-idukki", models.BasinDischarge{
			Basin: "Periyar", Station: "Idukki", River: "Periyar", State: "Kerala",
			Date: "2025-11-20", DischargeCumecs: 3320, Status: models.DischargeStatusAlert, DeviationPercent: 14.8,
		}),
		build("brahmani-rengali", models.BasinDischarge{
			Basin: "Brahmani", Station: "Rengali", River: "Brahmani", State: "Odisha",
			Date: "2025-11-20", DischargeCumecs: 3015, Status: models.DischargeStatusNormal, DeviationPercent: -4.6,
		}),
		build("sutlej-bhakra", models.BasinDischarge{
			Basin: "Sutlej", Station: "Bhakra", River: "Sutlej", State: "Himachal Pradesh",
			Date: "2025-11-20", DischargeCumecs: 3475, Status: models.DischargeStatusDanger, DeviationPercent: 21.3,
		}),
	}
}

func fallbackRainfall() []waterdto.RainfallSummaryDTO {
	build := func(id string, m models.RainfallSummary) waterdto.RainfallSummaryDTO {
		return waterdto.RainfallSummaryDTO{Id: id, RainfallSummary: m}
	}
	return []waterdto.RainfallSummaryDTO{
		build("northwest-dehradun", models.RainfallSummary{
			Region: "Northwest", State: "Uttarakhand", District: "Dehradun", Date: "2025-11-20",
			RainfallMm: 38, DepartureFromNormalPercent: 6, Category: models.RainfallCategoryModerate,
		}),
		build("northeast-dibrugarh", models.RainfallSummary{
			Region: "East & Northeast", State: "Assam", District: "Dibrugarh", Date: "2025-11-20",
			RainfallMm: 72, DepartureFromNormalPercent: 18, Category: models.RainfallCategoryHeavy,
		}),
		build("central-bhopal", models.RainfallSummary{
			Region: "Central", State: "Madhya Pradesh", District: "Bhopal", Date: "2025-11-20",
			RainfallMm: 22, DepartureFromNormalPercent: -9, Category: models.RainfallCategoryLight,
		}),
		build("south-chennai", models.RainfallSummary{
			Region: "South Peninsula", State: "Tamil Nadu", District: "Chennai", Date: "2025-11-20",
			RainfallMm: 64, DepartureFromNormalPercent: 11, Category: models.RainfallCategoryModerate,
		}),
		build("west-pune", models.RainfallSummary{
			Region: "West", State: "Maharashtra", District: "Pune", Date: "2025-11-20",
			RainfallMm: 12, DepartureFromNormalPercent: -22, Category: models.RainfallCategoryLight,
		}),
	}
}

func fallbackAlerts() []waterdto.FloodAlertDTO {
	build := func(id string, m models.FloodAlert) waterdto.FloodAlertDTO {
		return waterdto.FloodAlertDTO{Id: id, FloodAlert: m}
	}
	return []waterdto.FloodAlertDTO{
		build("brahmaputra-kaziranga", models.FloodAlert{
			Basin: "Brahmaputra", Location: "Kaziranga, Assam", Severity: models.AlertSeverityWarning,
			LastUpdatedAt: "2025-11-20T05:00:00Z", ExpectedPeakDate: "2025-11-22",
			Impact:   "Low-lying forest stretches likely to stay inundated; wildlife corridors being patrolled.",
			Advisory: "Restrict tourist traffic, keep veterinary rapid-response teams on standby, and broadcast hourly updates.",
		}),
		build("ganga-patna", models.FloodAlert{
			Basin: "Ganga", Location: "Patna, Bihar", Severity: models.AlertSeverityAlert,
			LastUpdatedAt: "2025-11-20T04:30:00Z", ExpectedPeakDate: "2025-11-21",
			Impact:   "River flowing 0.35 m below danger level; embankment inspection teams deployed.",
			Advisory: "Secure temporary shelters in riverine wards, test flood sirens, and keep evacuation boats ready.",
		}),
		build("godavari-bhadrachalam", models.FloodAlert{
			Basin: "Godavari", Location: "Bhadrachalam, Telangana", Severity: models.AlertSeverityWatch,
			LastUpdatedAt: "2025-11-20T03:45:00Z", ExpectedPeakDate: "2025-11-23",
			Impact:   "Second warning level triggered; ferry services halted along upstream villages.",
			Advisory: "Maintain two gates open at upstream barrage, continue hourly level reporting, and brief fishing communities.",
		}),
	}
}

func fallbackProjects() []waterdto.WaterProjectDTO {
	build := func(id string, m models.WaterProject) waterdto.WaterProjectDTO {
		return waterdto.WaterProjectDTO{Id: id, WaterProject: m}
	}
	return []waterdto.WaterProjectDTO{
		build("upper-yamuna-automation", models.WaterProject{
			ProjectName: "Upper Yamuna Barrage Automation", Basin: "Ganga", State: "Uttar Pradesh",
			Phase: "Execution", CompletionPercent: 62, BudgetCrore: 425, BeneficiariesLakh: 18,
			CommissionYear: 2026, NextMilestone: "SCADA hardware delivery",
		}),
		build("brahmaputra-floodwalls", models.WaterProject{
			ProjectName: "Brahmaputra Riverfront Floodwalls", Basin: "Brahmaputra", State: "Assam",
			Phase: "Planning", CompletionPercent: 18, BudgetCrore: 690, BeneficiariesLakh: 12,
			CommissionYear: 2027, NextMilestone: "Environmental clearance",
		}),
		build("godavari-delta-modernisation", models.WaterProject{
			ProjectName: "Godavari Delta Modernisation", Basin: "Godavari", State: "Andhra Pradesh",
			Phase: "Execution", CompletionPercent: 47, BudgetCrore: 1035, BeneficiariesLakh: 26,
			CommissionYear: 2028, NextMilestone: "Canal automation award",
		}),
		build("hydrology-grid", models.WaterProject{
			ProjectName: "National Hydrology Observation Grid", Basin: "All India", State: "Pan-India",
			Phase: "Pilot", CompletionPercent: 35, BudgetCrore: 310, BeneficiariesLakh: 40,
			CommissionYear: 2026, NextMilestone: "Phase-2 sensor deployment",
		}),
	}
}
