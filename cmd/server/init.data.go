package main

import (
	"context"

	"github.com/robfig/cron/v3"

	watersvc "cwc_water/internal/api/water/service"
	"cwc_water/internal/global"
	"cwc_water/internal/logger"
	"cwc_water/internal/metrics"
)

// appMetrics - các Prometheus metric dùng chung cho seeder và tầng HTTP
var appMetrics *metrics.Metrics

// InitSampleData kiểm tra metadata tĩnh, seed dữ liệu mẫu nếu được cấu hình
// và lên lịch re-seed định kỳ theo SEED_CRON.
func InitSampleData() {
	log := logger.GetAppLogger()

	appMetrics = metrics.NewMetrics()

	// Bắt lỗi cấu hình template (ví dụ dangerLevel <= alertLevel) ngay khi khởi động
	if err := watersvc.ValidateTemplates(); err != nil {
		log.Fatalf("Invalid sample templates: %v", err)
	}

	seeder := watersvc.NewSeederService(appMetrics)

	if global.ServerConfig.SeedOnStart {
		// Server vẫn phục vụ khi store chưa sẵn sàng; lần re-seed kế tiếp sẽ thử lại
		if err := seeder.SeedAll(context.Background()); err != nil {
			log.WithError(err).Error("Failed to seed sample data on start")
		}
	}

	// Lên lịch re-seed định kỳ nếu có cấu hình cron
	if spec := global.ServerConfig.SeedCron; spec != "" {
		c := cron.New()
		if _, err := c.AddFunc(spec, func() {
			if err := seeder.SeedAll(context.Background()); err != nil {
				log.WithError(err).Error("Scheduled re-seed failed")
			}
		}); err != nil {
			log.Fatalf("Failed to set up seed cron job: %v", err)
		}
		c.Start()
		log.Infof("Scheduled re-seed with cron spec %q", spec)
	}
}
