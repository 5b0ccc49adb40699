// Package logger cung cấp ba logger tách biệt (app, audit, error) trên nền
// logrus, ghi file có rotation qua lumberjack và không chặn request nhờ
// AsyncHook.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// asyncBufferSize là số entry tối đa được buffer trước khi bị bỏ qua
const asyncBufferSize = 1000

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig

	// rootDir là thư mục gốc của project, nơi đặt thư mục logs
	rootDir string
)

// Init khởi tạo hệ thống logging. cfg nil dùng cấu hình mặc định.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := initRootDir(); err != nil {
		return fmt.Errorf("failed to initialize root directory: %w", err)
	}

	logPath := getLogPath()
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// initRootDir xác định thư mục gốc của project theo thứ tự ưu tiên:
// biến môi trường LOG_ROOT_DIR → đường dẫn executable → working directory.
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	if envRootDir := os.Getenv("LOG_ROOT_DIR"); envRootDir != "" {
		// Resolve symlink (systemd hay chạy qua link)
		if resolvedPath, err := filepath.EvalSymlinks(envRootDir); err == nil {
			rootDir = resolvedPath
			return nil
		}
		rootDir = envRootDir
		return nil
	}

	executable, err := os.Executable()
	if err == nil {
		if resolvedExecutable, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolvedExecutable
		}

		// Binary nằm ở <root>/cmd/server/<binary>, đi lên 3 cấp
		rootDir = filepath.Dir(filepath.Dir(filepath.Dir(executable)))

		if dirLooksLikeRoot(rootDir) {
			return nil
		}
	}

	// Fallback: đi lên từ working directory để tìm thư mục chứa logs/ hoặc config/
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get executable or working directory: %v", err)
	}

	currentDir := wd
	for i := 0; i < 5; i++ {
		if dirLooksLikeRoot(currentDir) {
			rootDir = currentDir
			return nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	rootDir = wd
	return nil
}

// dirLooksLikeRoot nhận diện thư mục gốc project qua sự tồn tại của logs/ hoặc config/
func dirLooksLikeRoot(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, "logs")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, "config")); err == nil {
		return true
	}
	return false
}

// getLogPath trả về đường dẫn thư mục logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa tồn tại
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger dựng một logrus.Logger theo cấu hình chung
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// FilterHook phải đứng trước AsyncHook để đánh dấu entry trước khi buffer
	logger.AddHook(NewFilterHook(config))

	// Mọi writer đi qua AsyncHook; output của logger bị discard để
	// không ghi trùng và không chặn goroutine gọi log khi file I/O chậm
	if len(writers) > 0 {
		logger.AddHook(NewAsyncHookWithWriters(writers, asyncBufferSize))
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)

	logger.WithFields(logrus.Fields{
		"service":  name,
		"log_file": getLogFilePath(name),
		"level":    logger.GetLevel().String(),
	}).Info("Logger initialized successfully")

	return logger
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(name string) string {
	logPath := getLogPath()
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "audit":
		filename = config.AuditFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(logPath, filename)
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger ghi dấu vết thao tác (đăng nhập, phân công, nộp tệp)
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho lỗi nghiêm trọng và panic
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
