package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để không chặn request handling.
// Entry được buffer qua channel và ghi vào các writers trong goroutine riêng.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook tạo async hook với một writer
func NewAsyncHook(writer io.Writer, bufferSize int) *AsyncHook {
	return NewAsyncHookWithWriters([]io.Writer{writer}, bufferSize)
}

// NewAsyncHookWithWriters tạo async hook ghi ra nhiều writers (file + stdout).
// bufferSize <= 0 dùng mặc định 1000 entries.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không bao giờ block.
// Channel đầy thì entry bị bỏ qua thay vì chặn request.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng (trong quá trình shutdown): ghi thẳng ra writers
		data, err := h.formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer đầy, bỏ qua entry. Không được log ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// formatEntry format entry bằng formatter của logger, fallback sang String()
func (h *AsyncHook) formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// processEntries ghi các entry đã buffer ra writers trong goroutine riêng.
// Panic trong goroutine này được recover để logger không kéo sập server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Ghi thẳng ra stderr, không dùng logger để tránh vòng lặp
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook đánh dấu entry không cần ghi bằng field "_filtered"
			// (hook của logrus không thể tự hủy entry nên phải lọc ở đây)
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}
			if _, ok := entry.Data["_filtered"]; ok {
				entry = entry.Dup()
				delete(entry.Data, "_filtered")
			}

			data, err := h.formatEntry(entry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					// Writer lỗi thì tiếp tục với writer kế tiếp
					continue
				}
			}
		}()
	}
}

// Close đóng hook và đợi các entry còn trong buffer được ghi hết
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
