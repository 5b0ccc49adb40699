package utility

import (
	"time"

	"task_manager/internal/logger"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và ghi log thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetAppLogger().Errorf("Đã bắt lỗi panic: %v", err)
		}
	}()

	f()
}

// UnixMilli dùng để lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
// Hàm này sẽ được sử dụng khi cần timestamp hiện tại
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}
