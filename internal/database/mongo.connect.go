package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cwc_water/config"
	watermodels "cwc_water/internal/api/water/models"
	"cwc_water/internal/global"
	"cwc_water/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInstance khởi tạo và trả về một *mongo.Client từ connection URI trong cấu hình.
// Trả về lỗi nếu URI rỗng hoặc không kết nối / ping được.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                 // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Kiểm tra kết nối
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

var sessionMu sync.Mutex

// GetSession trả về client MongoDB dùng chung, kết nối lười ở lần dùng đầu tiên.
// Kết nối thất bại không bị cache: request hiện tại nhận lỗi, lần gọi sau thử
// lại, tiến trình không chết vì store không khả dụng lúc khởi động.
func GetSession() (*mongo.Client, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if global.MongoDB_Session != nil {
		return global.MongoDB_Session, nil
	}

	client, err := GetInstance(global.ServerConfig)
	if err != nil {
		return nil, err
	}

	if err := bootstrap(client); err != nil {
		_ = client.Disconnect(context.TODO())
		return nil, err
	}

	global.MongoDB_Session = client
	return client, nil
}

// bootstrap tạo các collection còn thiếu và các index khai báo trên model,
// chạy đúng một lần ngay sau khi kết nối thành công.
func bootstrap(client *mongo.Client) error {
	if err := EnsureDatabaseAndCollections(client); err != nil {
		return fmt.Errorf("failed to ensure database and collections: %w", err)
	}

	db := client.Database(global.ServerConfig.MongoDB_DBName)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexModels := map[string]interface{}{
		global.MongoDB_ColNames.ReservoirLevels: watermodels.ReservoirLevel{},
		global.MongoDB_ColNames.BasinDischarges: watermodels.BasinDischarge{},
		global.MongoDB_ColNames.RainfallDaily:   watermodels.RainfallSummary{},
		global.MongoDB_ColNames.FloodAlerts:     watermodels.FloodAlert{},
		global.MongoDB_ColNames.WaterProjects:   watermodels.WaterProject{},
	}
	for name, model := range indexModels {
		if err := CreateIndexes(ctx, db.Collection(name), model); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}

	return nil
}

// CollectionResolver trả về hàm resolve một collection theo tên. Collection
// được đăng ký lười vào registry ở lần resolve thành công đầu tiên; kết nối
// store chỉ được mở khi có resolve.
func CollectionResolver(name string) func() (*mongo.Collection, error) {
	return func() (*mongo.Collection, error) {
		return global.RegistryCollections.GetOrCreate(name, func() (*mongo.Collection, error) {
			client, err := GetSession()
			if err != nil {
				return nil, err
			}
			return client.Database(global.ServerConfig.MongoDB_DBName).Collection(name), nil
		})
	}
}

// CloseInstance đóng kết nối MongoDB client.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
