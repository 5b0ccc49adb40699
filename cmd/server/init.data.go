package main

import (
	"os"
	"path/filepath"

	"task_manager/internal/global"
	"task_manager/internal/logger"
)

// InitDefaultData chuẩn bị các tài nguyên cục bộ cần có trước khi nhận request:
// cây thư mục upload cho ảnh đại diện và tệp nộp nhiệm vụ.
func InitDefaultData() {
	log := logger.GetAppLogger()

	uploadDir := global.ServerConfig.UploadDir
	for _, dir := range []string{
		uploadDir,
		filepath.Join(uploadDir, "profile"),
		filepath.Join(uploadDir, "submissions"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create upload directory %s: %v", dir, err)
		}
	}

	log.WithField("upload_dir", uploadDir).Info("Upload directories ready")
}
