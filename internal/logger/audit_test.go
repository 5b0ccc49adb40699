// Package logger - Test ghi nhận người thực hiện trong audit log.
package logger

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// auditCaptureHook giữ lại field của các entry đi qua audit logger để kiểm tra.
type auditCaptureHook struct {
	mu      sync.Mutex
	entries []logrus.Fields
}

func (h *auditCaptureHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *auditCaptureHook) Fire(e *logrus.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	fields := make(logrus.Fields, len(e.Data))
	for k, v := range e.Data {
		fields[k] = v
	}
	h.entries = append(h.entries, fields)
	return nil
}

// AuthMiddleware đặt user_id vào Locals dưới dạng primitive.ObjectID;
// audit log phải ghi ra dạng hex thay vì bỏ trống.
func TestLogAction_GhiNhanNguoiThucHien(t *testing.T) {
	t.Setenv("LOG_ROOT_DIR", t.TempDir())
	cfg := DefaultConfig()
	cfg.Output = "stdout"
	if err := Init(cfg); err != nil {
		t.Fatalf("Init logger thất bại: %v", err)
	}

	capture := &auditCaptureHook{}
	GetAuditLogger().AddHook(capture)

	userID := primitive.NewObjectID()
	app := fiber.New()
	app.Get("/audit", func(c fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", "employee")
		LogAction("task_assign", c, nil)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/audit", nil))
	if err != nil {
		t.Fatalf("Gọi route test thất bại: %v", err)
	}
	defer resp.Body.Close()

	capture.mu.Lock()
	defer capture.mu.Unlock()
	found := false
	for _, fields := range capture.entries {
		if fields["action"] != "task_assign" {
			continue
		}
		found = true
		if fields["user_id"] != userID.Hex() {
			t.Errorf("user_id trong audit log = %q, muốn %q", fields["user_id"], userID.Hex())
		}
		if fields["role"] != "employee" {
			t.Errorf("role trong audit log = %q, muốn \"employee\"", fields["role"])
		}
	}
	if !found {
		t.Fatal("Không tìm thấy entry audit cho hành động task_assign")
	}
}
