package global

import (
	"cwc_water/config"
	"cwc_water/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Water_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Water_CollectionName struct {
	ReservoirLevels string // Tên collection cho mực nước hồ chứa
	BasinDischarges string // Tên collection cho lưu lượng theo lưu vực
	RainfallDaily   string // Tên collection cho lượng mưa theo ngày
	FloodAlerts     string // Tên collection cho cảnh báo lũ
	WaterProjects   string // Tên collection cho dự án thủy lợi
}

// Các biến toàn cục
var Validate *validator.Validate                                                      // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                     // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                                // Cấu hình của server
var MongoDB_ColNames = MongoDB_Water_CollectionName{ // Tên các collection
	ReservoirLevels: "reservoir_levels",
	BasinDischarges: "basin_discharges",
	RainfallDaily:   "rainfall_daily",
	FloodAlerts:     "flood_alerts",
	WaterProjects:   "water_projects",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
