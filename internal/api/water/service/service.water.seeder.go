package watersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "cwc_water/internal/api/base/service"
	"cwc_water/internal/api/water/models"
	"cwc_water/internal/database"
	"cwc_water/internal/global"
	"cwc_water/internal/logger"
	"cwc_water/internal/metrics"
)

// SeederService làm cho tập dữ liệu seed trong store khớp chính xác với
// đầu ra của các builder cho lần chạy hiện tại, không đụng tới document
// không thuộc tag hiện hành.
type SeederService struct {
	reservoirs basesvc.BaseServiceMongo[models.ReservoirLevel]
	discharges basesvc.BaseServiceMongo[models.BasinDischarge]
	rainfall   basesvc.BaseServiceMongo[models.RainfallSummary]
	alerts     basesvc.BaseServiceMongo[models.FloodAlert]
	projects   basesvc.BaseServiceMongo[models.WaterProject]

	sourceTag     string
	daysOfHistory int
	metrics       *metrics.Metrics
}

// NewSeederService tạo mới SeederService. Collection được resolve lười:
// kết nối store chỉ mở ở lần seed đầu tiên.
func NewSeederService(m *metrics.Metrics) *SeederService {
	return &SeederService{
		reservoirs:    basesvc.NewBaseServiceMongo[models.ReservoirLevel](database.CollectionResolver(global.MongoDB_ColNames.ReservoirLevels)),
		discharges:    basesvc.NewBaseServiceMongo[models.BasinDischarge](database.CollectionResolver(global.MongoDB_ColNames.BasinDischarges)),
		rainfall:      basesvc.NewBaseServiceMongo[models.RainfallSummary](database.CollectionResolver(global.MongoDB_ColNames.RainfallDaily)),
		alerts:        basesvc.NewBaseServiceMongo[models.FloodAlert](database.CollectionResolver(global.MongoDB_ColNames.FloodAlerts)),
		projects:      basesvc.NewBaseServiceMongo[models.WaterProject](database.CollectionResolver(global.MongoDB_ColNames.WaterProjects)),
		sourceTag:     global.ServerConfig.SeedSourceTag,
		daysOfHistory: global.ServerConfig.SeedDaysOfHistory,
		metrics:       m,
	}
}

// SeedAll sinh và nạp toàn bộ dataset mẫu theo mẫu delete-then-insert:
// xóa mọi document mang tag hiện hành rồi bulk-insert dữ liệu mới.
// Lỗi ở bất kỳ collection nào sẽ dừng toàn bộ lần chạy; seed dở dang có thể
// xảy ra (không transactional giữa các collection) và hội tụ khi chạy lại.
func (s *SeederService) SeedAll(ctx context.Context) error {
	start := time.Now()
	dates := BuildDateWindow(start, s.daysOfHistory)

	logger.WithModule("seeder").Infof("Seeding synthetic water datasets (%d day window, tag=%s)...", s.daysOfHistory, s.sourceTag)

	err := s.seedAll(ctx, dates, start)
	if s.metrics != nil {
		s.metrics.SeedDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.SeedRuns.WithLabelValues("error").Inc()
		} else {
			s.metrics.SeedRuns.WithLabelValues("success").Inc()
		}
	}
	if err != nil {
		logger.WithModule("seeder").WithError(err).Error("Seed run failed")
		return err
	}

	logger.WithModule("seeder").Info("Synthetic baseline data is in place")
	return nil
}

func (s *SeederService) seedAll(ctx context.Context, dates []string, now time.Time) error {
	if err := seedCollection(ctx, s.reservoirs, global.MongoDB_ColNames.ReservoirLevels,
		BuildReservoirDocs(dates, ReservoirTemplates, s.sourceTag), s.sourceTag, s.metrics); err != nil {
		return err
	}
	if err := seedCollection(ctx, s.discharges, global.MongoDB_ColNames.BasinDischarges,
		BuildDischargeDocs(dates, BasinStations, s.sourceTag), s.sourceTag, s.metrics); err != nil {
		return err
	}
	if err := seedCollection(ctx, s.rainfall, global.MongoDB_ColNames.RainfallDaily,
		BuildRainfallDocs(dates, RainfallStations, s.sourceTag), s.sourceTag, s.metrics); err != nil {
		return err
	}
	if err := seedCollection(ctx, s.alerts, global.MongoDB_ColNames.FloodAlerts,
		BuildFloodAlerts(now, FloodAlertSeeds, s.sourceTag), s.sourceTag, s.metrics); err != nil {
		return err
	}
	if err := seedCollection(ctx, s.projects, global.MongoDB_ColNames.WaterProjects,
		BuildProjectStats(WaterProjectSeeds, s.sourceTag), s.sourceTag, s.metrics); err != nil {
		return err
	}
	return nil
}

// seedCollection xóa các document mang tag rồi insert danh sách mới (nếu có).
func seedCollection[T any](
	ctx context.Context,
	svc basesvc.BaseServiceMongo[T],
	collectionName string,
	docs []T,
	sourceTag string,
	m *metrics.Metrics,
) error {
	removed, err := svc.DeleteMany(ctx, bson.M{"sourceTag": sourceTag})
	if err != nil {
		return fmt.Errorf("clear %s: %w", collectionName, err)
	}
	if removed > 0 {
		logger.WithCollection(collectionName).Infof("Cleared %d prior '%s' docs", removed, sourceTag)
	}

	if len(docs) == 0 {
		return nil
	}

	inserted, err := svc.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert %s: %w", collectionName, err)
	}
	if m != nil {
		m.SeedDocuments.WithLabelValues(collectionName).Add(float64(inserted))
	}
	logger.WithCollection(collectionName).Infof("Inserted %d docs", inserted)
	return nil
}
