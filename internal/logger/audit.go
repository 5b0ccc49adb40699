package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditAction log một hành động audit
type AuditAction struct {
	Action       string                 `json:"action"`        // Tên hành động (ví dụ: "task_assign", "auth_login")
	UserID       string                 `json:"user_id"`       // ID người dùng thực hiện
	Role         string                 `json:"role"`          // Vai trò người dùng thực hiện
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Loại tài nguyên (ví dụ: "task", "project")
	IP           string                 `json:"ip"`            // IP address
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Chi tiết bổ sung
	Timestamp    time.Time              `json:"timestamp"`     // Thời gian
}

// LogAction log một hành động audit
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	// Lấy user ID và role từ context nếu có.
	// AuthMiddleware đặt user_id vào Locals dưới dạng primitive.ObjectID.
	if userID := c.Locals("user_id"); userID != nil {
		switch uid := userID.(type) {
		case primitive.ObjectID:
			audit.UserID = uid.Hex()
		case string:
			audit.UserID = uid
		}
	}
	if role := c.Locals("role"); role != nil {
		if r, ok := role.(string); ok {
			audit.Role = r
		}
	}

	// Lấy request ID
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"role":          audit.Role,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogAuth log các thao tác authentication (đăng nhập, đăng ký, cấp tài khoản)
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}

// LogTask log các thao tác trên nhiệm vụ (tạo, phân công, nộp tệp, xác nhận)
func LogTask(action string, taskID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["task_id"] = taskID

	LogAction("task_"+action, c, details)
}
