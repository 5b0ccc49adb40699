package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry với request context từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// Request ID có thể nằm trong Locals hoặc header tùy middleware
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	return entry
}

// WithFields trả về logger entry với các fields bổ sung
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError trả về logger entry với error
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}
