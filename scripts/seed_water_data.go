// Script seed lại toàn bộ dữ liệu mẫu thủy văn (reservoir_levels, basin_discharges,
// rainfall_daily, flood_alerts, water_projects) cho tag SEED_SOURCE_TAG hiện hành.
// Dữ liệu của các tag khác không bị đụng tới.
//
// Chạy: go run scripts/seed_water_data.go
package main

import (
	"context"
	"log"
	"time"

	"cwc_water/config"
	watersvc "cwc_water/internal/api/water/service"
	"cwc_water/internal/database"
	"cwc_water/internal/global"
	"cwc_water/internal/metrics"
)

func main() {
	global.InitValidator()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không thể đọc cấu hình, kiểm tra MONGODB_URI")
	}
	global.ServerConfig = cfg

	if err := watersvc.ValidateTemplates(); err != nil {
		log.Fatalf("Template dữ liệu mẫu không hợp lệ: %v", err)
	}

	// Kết nối store mở lười ở thao tác đầu tiên của seeder
	seeder := watersvc.NewSeederService(metrics.NewMetricsForTesting())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Seed thất bại: %v", err)
	}
	if global.MongoDB_Session != nil {
		defer database.CloseInstance(global.MongoDB_Session)
	}
	log.Printf("Seed hoàn tất sau %s (tag=%s, %d ngày lịch sử)",
		time.Since(start).Round(time.Millisecond), cfg.SeedSourceTag, cfg.SeedDaysOfHistory)
}
