package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "task_manager/internal/api/base/handler"
)

// ============================================================================
// QUAN TRỌNG: CÁCH ĐĂNG KÝ MIDDLEWARE TRONG FIBER V3
// ============================================================================
//
// Fiber v3 đổi thứ tự tham số so với v2: handler đứng TRƯỚC, middleware đứng
// SAU. Đăng ký theo kiểu v2 sẽ khiến middleware không được gọi:
//
//	router.Get("/path", middleware.AuthMiddleware(), handler)   // SAI
//	router.Get("/path", handler, middleware.AuthMiddleware())   // ĐÚNG
//
// Không dùng group.Use(mw) cho middleware phân quyền: Use áp theo prefix nên
// sẽ dính sang các route khác cùng prefix nhưng khác quyền. Mọi route có
// middleware trong các domain router PHẢI dùng RegisterRouteWithMiddleware,
// hàm này gắn middleware vào đúng một route.
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware gắn vào đúng một
// route theo thứ tự tham số của Fiber v3 (xem comment ở đầu file).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler, middlewares...)
	case "POST":
		routeGroup.Post(path, handler, middlewares...)
	case "PUT":
		routeGroup.Put(path, handler, middlewares...)
	case "PATCH":
		routeGroup.Patch(path, handler, middlewares...)
	case "DELETE":
		routeGroup.Delete(path, handler, middlewares...)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt
// Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)

	// Health check nằm ngoài các domain
	systemHandler := basehdl.NewSystemHandler()
	v1.Get("/system/health", systemHandler.HandleHealth)

	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
