// Package authsvc - tra cứu danh sách tài khoản phục vụ màn hình phân công.
package authsvc

import (
	"context"

	models "task_manager/internal/api/auth/models"
	"task_manager/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmployeesForDepartment trả về các Employee thuộc một phòng ban,
// sắp xếp theo thời điểm tạo giảm dần. Dùng cho Admin chọn người nhận nhiệm vụ.
func (s *AuthService) EmployeesForDepartment(ctx context.Context, department string) ([]models.Employee, error) {
	if !models.IsValidDepartment(department) {
		return nil, common.ErrInvalidInput
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Employees.Find(ctx, bson.M{"department": department}, opts)
}

// ListByRole trả về toàn bộ tài khoản của một tier. Chỉ SuperAdmin được gọi.
func (s *AuthService) ListByRole(ctx context.Context, role string) (interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	switch role {
	case models.RoleSuperAdmin:
		return s.SuperAdmins.Find(ctx, bson.M{}, opts)
	case models.RoleAdmin:
		return s.Admins.Find(ctx, bson.M{}, opts)
	case models.RoleEmployee:
		return s.Employees.Find(ctx, bson.M{}, opts)
	default:
		return nil, common.ErrInvalidInput
	}
}

// GetEmployee trả về một Employee theo id.
func (s *AuthService) GetEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	employee, err := s.Employees.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return &employee, nil
}
