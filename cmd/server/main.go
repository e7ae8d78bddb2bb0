package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cwc_water/internal/database"
	"cwc_water/internal/global"
	"cwc_water/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()

	// Đóng tài nguyên khi nhận tín hiệu dừng: shutdown server rồi đóng
	// kết nối MongoDB (đảm bảo đóng cả khi kết nối chưa từng được dùng)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		log.Infof("Received signal %s, shutting down...", s)

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
		if global.MongoDB_Session != nil {
			_ = database.CloseInstance(global.MongoDB_Session)
		}
	}()

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server")

	if err := app.Listen(address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo dữ liệu mẫu (seed-on-start + lịch re-seed nếu được bật)
	InitSampleData()

	// Chạy Fiber server trên main thread
	main_thread()
}
