package main

import (
	"github.com/sirupsen/logrus"

	"cwc_water/config"
	"cwc_water/internal/global"
)

// Hàm khởi tạo các biến toàn cục. Kết nối store không mở ở đây:
// session Mongo được mở lười ở thao tác đầu tiên chạm tới store.
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}
