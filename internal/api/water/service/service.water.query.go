package watersvc

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "cwc_water/internal/api/base/service"
	"cwc_water/internal/api/water/models"
	"cwc_water/internal/database"
	"cwc_water/internal/global"
)

// Giới hạn mặc định cho từng endpoint đọc
const (
	DefaultReservoirLimit = 6
	DefaultDischargeLimit = 6
	DefaultRainfallLimit  = 8
	DefaultProjectLimit   = 6
)

// QueryService là tầng đọc stateless: dịch tham số request thành truy vấn
// store (lọc theo tag, sort, limit) cho các dataset thủy văn.
type QueryService struct {
	reservoirs basesvc.BaseServiceMongo[models.ReservoirLevel]
	discharges basesvc.BaseServiceMongo[models.BasinDischarge]
	rainfall   basesvc.BaseServiceMongo[models.RainfallSummary]
	alerts     basesvc.BaseServiceMongo[models.FloodAlert]
	projects   basesvc.BaseServiceMongo[models.WaterProject]

	sourceTag string
}

// NewQueryService tạo mới QueryService. Collection được resolve lười:
// kết nối store chỉ mở ở request đầu tiên chạm tới nó.
func NewQueryService() *QueryService {
	return &QueryService{
		reservoirs: basesvc.NewBaseServiceMongo[models.ReservoirLevel](database.CollectionResolver(global.MongoDB_ColNames.ReservoirLevels)),
		discharges: basesvc.NewBaseServiceMongo[models.BasinDischarge](database.CollectionResolver(global.MongoDB_ColNames.BasinDischarges)),
		rainfall:   basesvc.NewBaseServiceMongo[models.RainfallSummary](database.CollectionResolver(global.MongoDB_ColNames.RainfallDaily)),
		alerts:     basesvc.NewBaseServiceMongo[models.FloodAlert](database.CollectionResolver(global.MongoDB_ColNames.FloodAlerts)),
		projects:   basesvc.NewBaseServiceMongo[models.WaterProject](database.CollectionResolver(global.MongoDB_ColNames.WaterProjects)),
		sourceTag:  global.ServerConfig.SeedSourceTag,
	}
}

// tagFilter trả về filter theo tag dữ liệu mẫu đang hiệu lực
func (s *QueryService) tagFilter() bson.M {
	return bson.M{"sourceTag": s.sourceTag}
}

// ListReservoirLevels trả về mực nước hồ chứa, sắp xếp theo ngày giảm dần
// rồi tên hồ tăng dần.
func (s *QueryService) ListReservoirLevels(ctx context.Context, limit int64) ([]models.ReservoirLevel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "reservoirName", Value: 1}}).
		SetLimit(limit)
	return s.reservoirs.Find(ctx, s.tagFilter(), opts)
}

// ListBasinDischarges trả về lưu lượng theo trạm, sắp xếp theo ngày giảm dần
// rồi tên trạm tăng dần.
func (s *QueryService) ListBasinDischarges(ctx context.Context, limit int64) ([]models.BasinDischarge, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "station", Value: 1}}).
		SetLimit(limit)
	return s.discharges.Find(ctx, s.tagFilter(), opts)
}

// ListRainfall trả về lượng mưa ngày, sắp xếp theo ngày giảm dần
// rồi tên vùng tăng dần.
func (s *QueryService) ListRainfall(ctx context.Context, limit int64) ([]models.RainfallSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "region", Value: 1}}).
		SetLimit(limit)
	return s.rainfall.Find(ctx, s.tagFilter(), opts)
}

// ListFloodAlerts trả về toàn bộ cảnh báo lũ đang hiệu lực, sắp xếp theo
// hạng khẩn cấp giảm dần (warning > alert > watch), không áp dụng limit.
func (s *QueryService) ListFloodAlerts(ctx context.Context) ([]models.FloodAlert, error) {
	alerts, err := s.alerts.Find(ctx, s.tagFilter(), nil)
	if err != nil {
		return nil, err
	}
	SortAlertsBySeverity(alerts)
	return alerts, nil
}

// SortAlertsBySeverity sắp xếp cảnh báo theo hạng khẩn cấp giảm dần.
// Thứ tự chuỗi mặc định của severity không phản ánh độ khẩn cấp nên phải
// dùng hạng số tường minh.
func SortAlertsBySeverity(alerts []models.FloodAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
}

// ListProjects trả về dự án, sắp xếp theo tiến độ hoàn thành giảm dần.
func (s *QueryService) ListProjects(ctx context.Context, limit int64) ([]models.WaterProject, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completionPercent", Value: -1}}).
		SetLimit(limit)
	return s.projects.Find(ctx, s.tagFilter(), opts)
}
