package watersvc

import (
	"cwc_water/internal/api/water/models"
	"cwc_water/internal/global"
)

// ReservoirTemplate - Metadata tĩnh của một hồ chứa dùng để sinh dữ liệu mẫu
type ReservoirTemplate struct {
	ReservoirName       string  `validate:"required"`
	Basin               string  `validate:"required"`
	River               string  `validate:"required"`
	State               string  `validate:"required"`
	LiveCapacityTMC     float64 `validate:"gt=0"`
	FullReservoirLevelM float64 `validate:"gt=0"`
}

// BasinStationTemplate - Metadata tĩnh của một trạm đo lưu lượng.
// Bất biến: DangerLevelCumecs > AlertLevelCumecs.
type BasinStationTemplate struct {
	Basin             string  `validate:"required"`
	Station           string  `validate:"required"`
	River             string  `validate:"required"`
	State             string  `validate:"required"`
	AlertLevelCumecs  float64 `validate:"gt=0"`
	DangerLevelCumecs float64 `validate:"gtfield=AlertLevelCumecs"`
}

// RainfallStationTemplate - Metadata tĩnh của một vùng khí tượng
type RainfallStationTemplate struct {
	Region   string `validate:"required"`
	State    string `validate:"required"`
	District string `validate:"required"`
}

// FloodAlertSeed - Nội dung tĩnh của một cảnh báo lũ mẫu
type FloodAlertSeed struct {
	Basin    string
	Location string
	Severity models.AlertSeverity
	Impact   string
}

// WaterProjectSeed - Nội dung tĩnh của một dự án mẫu
type WaterProjectSeed struct {
	ProjectName       string
	Basin             string
	State             string
	Phase             string
	BudgetCrore       int
	CompletionPercent int
	BeneficiariesLakh int
}

// ReservoirTemplates - Danh sách hồ chứa mẫu
var ReservoirTemplates = []ReservoirTemplate{
	{
		ReservoirName:       "Tehri",
		Basin:               "Ganga",
		River:               "Bhagirathi",
		State:               "Uttarakhand",
		LiveCapacityTMC:     71.0,
		FullReservoirLevelM: 830.0,
	},
	{
		ReservoirName:       "Bhakra",
		Basin:               "Satluj",
		River:               "Satluj",
		State:               "Himachal Pradesh",
		LiveCapacityTMC:     72.4,
		FullReservoirLevelM: 518.0,
	},
	{
		ReservoirName:       "Hirakud",
		Basin:               "Mahanadi",
		River:               "Mahanadi",
		State:               "Odisha",
		LiveCapacityTMC:     68.8,
		FullReservoirLevelM: 195.0,
	},
	{
		ReservoirName:       "Sardar Sarovar",
		Basin:               "Narmada",
		River:               "Narmada",
		State:               "Gujarat",
		LiveCapacityTMC:     155.0,
		FullReservoirLevelM: 138.7,
	},
	{
		ReservoirName:       "Nagarjuna Sagar",
		Basin:               "Krishna",
		River:               "Krishna",
		State:               "Telangana",
		LiveCapacityTMC:     312.0,
		FullReservoirLevelM: 179.8,
	},
}

// BasinStations - Danh sách trạm đo lưu lượng mẫu
var BasinStations = []BasinStationTemplate{
	{
		Basin:             "Ganga",
		Station:           "Hardinge Bridge",
		River:             "Ganga",
		State:             "Uttar Pradesh",
		AlertLevelCumecs:  4000,
		DangerLevelCumecs: 5500,
	},
	{
		Basin:             "Brahmaputra",
		Station:           "Dibrugarh",
		River:             "Brahmaputra",
		State:             "Assam",
		AlertLevelCumecs:  5500,
		DangerLevelCumecs: 7000,
	},
	{
		Basin:             "Godavari",
		Station:           "Polavaram",
		River:             "Godavari",
		State:             "Andhra Pradesh",
		AlertLevelCumecs:  4500,
		DangerLevelCumecs: 6000,
	},
	{
		Basin:             "Narmada",
		Station:           "Garudeshwar",
		River:             "Narmada",
		State:             "Gujarat",
		AlertLevelCumecs:  3500,
		DangerLevelCumecs: 5200,
	},
}

// RainfallStations - Danh sách vùng khí tượng mẫu
var RainfallStations = []RainfallStationTemplate{
	{Region: "Northwest", State: "Uttarakhand", District: "Dehradun"},
	{Region: "East & Northeast", State: "Assam", District: "Dibrugarh"},
	{Region: "Central", State: "Madhya Pradesh", District: "Bhopal"},
	{Region: "South Peninsula", State: "Tamil Nadu", District: "Chennai"},
	{Region: "West", State: "Maharashtra", District: "Pune"},
}

// FloodAlertSeeds - Nội dung cảnh báo lũ mẫu
var FloodAlertSeeds = []FloodAlertSeed{
	{
		Basin:    "Brahmaputra",
		Location: "Kaziranga, Assam",
		Severity: models.AlertSeverityWarning,
		Impact:   "Low-lying forest stretches likely to remain inundated; wildlife movement advisories active.",
	},
	{
		Basin:    "Ganga",
		Location: "Patna, Bihar",
		Severity: models.AlertSeverityWatch,
		Impact:   "River flowing 0.4 m below danger level; embankment patrol teams on standby.",
	},
	{
		Basin:    "Godavari",
		Location: "Bhadrachalam, Telangana",
		Severity: models.AlertSeverityAlert,
		Impact:   "Second warning level triggered; ferry services halted across the river.",
	},
}

// alertAdvisories - Khuyến cáo theo thứ tự cảnh báo
var alertAdvisories = []string{
	"Restrict tourist movement near river islands; deploy mobile veterinary support.",
	"Keep evacuation boats ready and secure temporary shelters in low-lying wards.",
	"Maintain two extra gates open at upstream barrage; continue hourly level reporting.",
}

// WaterProjectSeeds - Nội dung dự án mẫu
var WaterProjectSeeds = []WaterProjectSeed{
	{
		ProjectName:       "Upper Yamuna Barrage Automation",
		Basin:             "Ganga",
		State:             "Uttar Pradesh",
		Phase:             "Execution",
		BudgetCrore:       425,
		CompletionPercent: 62,
		BeneficiariesLakh: 18,
	},
	{
		ProjectName:       "Brahmaputra Riverfront Floodwalls",
		Basin:             "Brahmaputra",
		State:             "Assam",
		Phase:             "Planning",
		BudgetCrore:       690,
		CompletionPercent: 18,
		BeneficiariesLakh: 12,
	},
	{
		ProjectName:       "Godavari Delta Modernisation",
		Basin:             "Godavari",
		State:             "Andhra Pradesh",
		Phase:             "Execution",
		BudgetCrore:       1035,
		CompletionPercent: 47,
		BeneficiariesLakh: 26,
	},
	{
		ProjectName:       "National Hydrology Observation Grid",
		Basin:             "All India",
		State:             "Pan-India",
		Phase:             "Pilot",
		BudgetCrore:       310,
		CompletionPercent: 35,
		BeneficiariesLakh: 40,
	},
}

// ValidateTemplates kiểm tra toàn bộ metadata tĩnh bằng validator,
// bắt các lỗi cấu hình như dangerLevel <= alertLevel ngay khi khởi động.
func ValidateTemplates() error {
	for _, t := range ReservoirTemplates {
		if err := global.Validate.Struct(t); err != nil {
			return err
		}
	}
	for _, t := range BasinStations {
		if err := global.Validate.Struct(t); err != nil {
			return err
		}
	}
	for _, t := range RainfallStations {
		if err := global.Validate.Struct(t); err != nil {
			return err
		}
	}
	return nil
}
