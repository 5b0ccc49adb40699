// Package router đăng ký các route thuộc domain auth: đăng ký/đăng nhập,
// cấp tài khoản, hồ sơ cá nhân và nhóm tra cứu /data.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "task_manager/internal/api/auth/handler"
	models "task_manager/internal/api/auth/models"
	"task_manager/internal/api/middleware"
	apirouter "task_manager/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("tạo AuthHandler: %w", err)
	}

	authenticated := middleware.AuthMiddleware()
	superAdminOnly := middleware.AuthMiddleware(models.RoleSuperAdmin)
	adminOnly := middleware.AuthMiddleware(models.RoleAdmin)

	// Các route công khai (không middleware)
	auth := v1.Group("/auth")
	auth.Post("/register-superadmin", authHandler.HandleRegisterSuperAdmin)
	auth.Post("/login-superadmin", authHandler.HandleLoginSuperAdmin)
	auth.Post("/login-admin", authHandler.HandleLoginAdmin)
	auth.Post("/login-employee", authHandler.HandleLoginEmployee)

	// Các route cần xác thực, middleware gắn theo từng route
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/create-admin", []fiber.Handler{superAdminOnly}, authHandler.HandleCreateAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/create-employee", []fiber.Handler{superAdminOnly}, authHandler.HandleCreateEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authenticated}, authHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PATCH", "/update-profile", []fiber.Handler{authenticated}, authHandler.HandleUpdateProfile)

	// Nhóm tra cứu /data
	apirouter.RegisterRouteWithMiddleware(v1, "/data", "GET", "/employees-for-admin", []fiber.Handler{adminOnly}, authHandler.HandleEmployeesForAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/data", "GET", "/users/:role", []fiber.Handler{superAdminOnly}, authHandler.HandleListUsersByRole)
	apirouter.RegisterRouteWithMiddleware(v1, "/data", "GET", "/employee/:employeeId", []fiber.Handler{authenticated}, authHandler.HandleGetEmployee)

	return nil
}
