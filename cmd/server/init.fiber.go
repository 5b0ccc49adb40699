package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "task_manager/internal/api/auth/router"
	"task_manager/internal/api/router"
	taskrouter "task_manager/internal/api/task/router"
	"task_manager/internal/common"
	"task_manager/internal/global"
	"task_manager/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	cfg := global.ServerConfig

	// Body limit phải chứa được một lần nộp đầy đủ: UploadMaxFiles tệp cỡ
	// UploadMaxFileSize MB cộng phần overhead của multipart
	bodyLimit := int(cfg.UploadMaxFileSize)*cfg.UploadMaxFiles*1024*1024 + 1024*1024

	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "Task Manager API",
		ServerHeader:  "Task Manager API",
		StrictRouting: true,  // /foo và /foo/ là khác nhau
		CaseSensitive: true,  // /Foo và /foo là khác nhau
		UnescapePath:  true,  // Tự động decode URL-encoded paths
		Immutable:     false, // Tính năng immutable cho ctx

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       bodyLimit,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				// Map HTTP status code sang error code nội bộ
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthRole.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				case fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				case fiber.StatusRequestEntityTooLarge:
					errorCode = common.ErrCodeFile.Code
				}
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS Middleware - đặt trước các middleware khác để xử lý preflight
	corsOrigins := cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate Limiting Middleware
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		rateLimitMax := cfg.RateLimit_Max
		rateLimitWindow := time.Duration(cfg.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua rate limit cho health check và preflight requests
				return c.Path() == "/api/v1/system/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, cfg.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// 5. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": "Internal Server Error",
				"status":  "error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/system/health"
		},
	}))

	// Đăng ký route của các domain
	if err := router.SetupRoutes(app, authrouter.Register, taskrouter.Register); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
