// Package models - role và department của hệ thống quản lý nhiệm vụ.
package models

import "task_manager/internal/global"

// Các role của hệ thống. Mỗi role lưu tài khoản ở một collection riêng.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
)

// Các phòng ban hợp lệ của employee.
const (
	DepartmentApplication = "application"
	DepartmentDesign      = "design"
	DepartmentProduction  = "production"
	DepartmentStore       = "store"
	DepartmentQuality     = "quality"
	DepartmentPurchase    = "purchase"
	DepartmentMaintenance = "maintenance"
	DepartmentServices    = "services"
)

// AllDepartments liệt kê các phòng ban hợp lệ, dùng cho validate input.
var AllDepartments = []string{
	DepartmentApplication,
	DepartmentDesign,
	DepartmentProduction,
	DepartmentStore,
	DepartmentQuality,
	DepartmentPurchase,
	DepartmentMaintenance,
	DepartmentServices,
}

// CollectionForRole trả về tên collection chứa tài khoản của role.
// Trả về chuỗi rỗng nếu role không hợp lệ.
func CollectionForRole(role string) string {
	switch role {
	case RoleSuperAdmin:
		return global.MongoDB_ColNames.SuperAdmins
	case RoleAdmin:
		return global.MongoDB_ColNames.Admins
	case RoleEmployee:
		return global.MongoDB_ColNames.Employees
	default:
		return ""
	}
}

// IsValidDepartment kiểm tra department có thuộc danh sách phòng ban hợp lệ không.
func IsValidDepartment(department string) bool {
	for _, d := range AllDepartments {
		if d == department {
			return true
		}
	}
	return false
}
