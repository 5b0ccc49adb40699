// Package authhdl - Handler đăng ký, đăng nhập, cấp tài khoản và hồ sơ cá nhân.
package authhdl

import (
	"fmt"
	"path/filepath"

	authdto "task_manager/internal/api/auth/dto"
	authsvc "task_manager/internal/api/auth/service"
	basehdl "task_manager/internal/api/base/handler"
	"task_manager/internal/api/middleware"
	"task_manager/internal/global"
	"task_manager/internal/logger"
	"task_manager/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý các route auth.
type AuthHandler struct {
	AuthService *authsvc.AuthService
}

// NewAuthHandler tạo AuthHandler mới.
func NewAuthHandler() (*AuthHandler, error) {
	authService, err := authsvc.NewAuthService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuthService: %w", err)
	}
	return &AuthHandler{AuthService: authService}, nil
}

// HandleRegisterSuperAdmin xử lý POST /auth/register-superadmin.
func (h *AuthHandler) HandleRegisterSuperAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.RegisterSuperAdminInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		superAdmin, err := h.AuthService.RegisterSuperAdmin(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAuth("register_superadmin", c, map[string]interface{}{"email": superAdmin.Email})
		return basehdl.HandleCreatedResponse(c, superAdmin)
	})
}

// HandleLoginSuperAdmin xử lý POST /auth/login-superadmin.
func (h *AuthHandler) HandleLoginSuperAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.LoginInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.AuthService.LoginSuperAdmin(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAuth("login_superadmin", c, map[string]interface{}{"email": input.Email})
		return basehdl.HandleResponse(c, result, nil)
	})
}

// HandleLoginAdmin xử lý POST /auth/login-admin.
func (h *AuthHandler) HandleLoginAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.LoginInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.AuthService.LoginAdmin(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAuth("login_admin", c, map[string]interface{}{"email": input.Email})
		return basehdl.HandleResponse(c, result, nil)
	})
}

// HandleLoginEmployee xử lý POST /auth/login-employee.
func (h *AuthHandler) HandleLoginEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.LoginInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.AuthService.LoginEmployee(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAuth("login_employee", c, map[string]interface{}{"email": input.Email})
		return basehdl.HandleResponse(c, result, nil)
	})
}

// HandleCreateAdmin xử lý POST /auth/create-admin (SuperAdmin).
func (h *AuthHandler) HandleCreateAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.CreateAdminInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		account, err := h.AuthService.CreateAdmin(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAction("create_admin", c, map[string]interface{}{
			"email":      input.Email,
			"department": input.Department,
		})
		return basehdl.HandleCreatedResponse(c, account)
	})
}

// HandleCreateEmployee xử lý POST /auth/create-employee (SuperAdmin).
func (h *AuthHandler) HandleCreateEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := basehdl.ParseAndValidateBody[authdto.CreateEmployeeInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		account, err := h.AuthService.CreateEmployee(c.Context(), input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAction("create_employee", c, map[string]interface{}{
			"email":      input.Email,
			"department": input.Department,
		})
		return basehdl.HandleCreatedResponse(c, account)
	})
}

// HandleGetProfile xử lý GET /auth/profile.
func (h *AuthHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		profile, err := h.AuthService.GetProfile(c.Context(), basehdl.RoleFromContext(c), userID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, profile, nil)
	})
}

// HandleUpdateProfile xử lý PATCH /auth/update-profile.
// Body là multipart: các trường scalar kèm file "photo" tùy chọn.
func (h *AuthHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[authdto.UpdateProfileInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		photoURL := ""
		if photo, ferr := c.FormFile("photo"); ferr == nil && photo != nil {
			if err := utility.ValidateImageFile(photo, global.ServerConfig.UploadMaxFileSize); err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			storedName := utility.GenerateStoredFileName("photo", photo.Filename)
			destDir := filepath.Join(global.ServerConfig.UploadDir, "profile")
			savedPath, err := utility.SaveUploadedFile(photo, destDir, storedName)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			photoURL = savedPath
		}

		role := basehdl.RoleFromContext(c)
		updated, err := h.AuthService.UpdateProfile(c.Context(), role, userID, input, photoURL)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		// Bản ghi principal vừa thay đổi, bỏ bản cache cũ
		middleware.GetAuthManager().InvalidatePrincipal(role, userID)
		logger.LogAction("update_profile", c, nil)
		return basehdl.HandleResponse(c, updated, nil)
	})
}
