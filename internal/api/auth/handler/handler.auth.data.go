// Package authhdl - Handler tra cứu danh sách tài khoản (nhóm route /data).
package authhdl

import (
	models "task_manager/internal/api/auth/models"
	basehdl "task_manager/internal/api/base/handler"
	"task_manager/internal/common"

	"github.com/gofiber/fiber/v3"
)

// HandleEmployeesForAdmin xử lý GET /data/employees-for-admin.
// Trả về các Employee cùng phòng ban với Admin đang gọi.
func (h *AuthHandler) HandleEmployeesForAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		department := basehdl.DepartmentFromContext(c)
		if department == "" {
			return basehdl.HandleResponse(c, nil, common.ErrForbidden)
		}
		employees, err := h.AuthService.EmployeesForDepartment(c.Context(), department)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, employees, nil)
	})
}

// HandleListUsersByRole xử lý GET /data/users/:role (SuperAdmin).
func (h *AuthHandler) HandleListUsersByRole(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		role := c.Params("role")
		if role != models.RoleSuperAdmin && role != models.RoleAdmin && role != models.RoleEmployee {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}
		users, err := h.AuthService.ListByRole(c.Context(), role)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, users, nil)
	})
}

// HandleGetEmployee xử lý GET /data/employee/:employeeId.
func (h *AuthHandler) HandleGetEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, err := basehdl.ParseObjectIDParam(c, "employeeId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		employee, err := h.AuthService.GetEmployee(c.Context(), employeeID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, employee, nil)
	})
}
