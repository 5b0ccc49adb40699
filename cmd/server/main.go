package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"task_manager/internal/database"
	"task_manager/internal/global"
	"task_manager/internal/logger"
	"task_manager/internal/utility"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình, nil dùng mặc định
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server, dừng êm khi nhận SIGINT/SIGTERM
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()

	// Bắt tín hiệu dừng để shutdown êm
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go utility.GoProtect(func() {
		sig := <-stop
		log.WithField("signal", sig.String()).Info("Shutting down server...")

		if err := app.Shutdown(); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
		}
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.Errorf("Error closing MongoDB connection: %v", err)
		}
	})

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	log.Info("Server stopped")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (validator, config, MongoDB, index)
	InitGlobal()

	// Khởi tạo registry các collection
	InitRegistry()

	// Chuẩn bị thư mục upload
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
