package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      string   // Mức log tối thiểu (debug, info, warn, error)
	Format     string   // Định dạng log: "json" hoặc "text"
	Output     string   // Đích ghi log: "file", "stdout", "both"
	LogPath    string   // Thư mục chứa file log (tương đối so với root project)
	AppFile    string   // Tên file log chính
	AuditFile  string   // Tên file log audit
	ErrorFile  string   // Tên file log lỗi
	MaxSize    int      // Kích thước tối đa mỗi file log (MB)
	MaxBackups int      // Số file cũ giữ lại
	MaxAge     int      // Số ngày giữ file log
	Compress   bool     // Nén file log cũ
	SkipPaths  []string // Các path bị bỏ qua khi ghi log request (ví dụ: /health)
}

// DefaultConfig trả về cấu hình logging mặc định
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		SkipPaths:  []string{"/api/v1/system/health"},
	}
}

// FilterHook đánh dấu các entry không cần ghi (ví dụ log request cho health check).
// Entry bị filter được đánh dấu bằng field "_filtered" để AsyncHook bỏ qua.
type FilterHook struct {
	skipPaths []string
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{skipPaths: cfg.SkipPaths}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị filter nếu field "path" khớp danh sách bỏ qua
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	path, ok := entry.Data["path"].(string)
	if !ok || path == "" {
		return nil
	}
	for _, skip := range h.skipPaths {
		if strings.HasPrefix(path, skip) {
			entry.Data["_filtered"] = true
			return nil
		}
	}
	return nil
}
