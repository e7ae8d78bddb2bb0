package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Seeder và query layer PHẢI dùng chung SeedSourceTag, nếu lệch nhau thì API trả về rỗng.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":4000"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_URI,required"`                      // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DB" envDefault:"cwc"`               // Tên cơ sở dữ liệu
	SeedSourceTag         string `env:"SEED_SOURCE_TAG" envDefault:"seed-water-v1"` // Tag đánh dấu một thế hệ dữ liệu mẫu
	SeedDaysOfHistory     int    `env:"SEED_DAYS_OF_HISTORY" envDefault:"10"`      // Số ngày lịch sử trong cửa sổ seed
	SeedOnStart           bool   `env:"SEED_ON_START" envDefault:"false"`          // Seed dữ liệu mẫu ngay khi khởi động server
	SeedCron              string `env:"SEED_CRON" envDefault:""`                   // Lịch cron re-seed (rỗng = tắt), ví dụ: "30 0 * * *"
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env (nếu có) rồi parse từ environment
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		// File env là tùy chọn: MONGODB_URI có thể đã được export sẵn
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
