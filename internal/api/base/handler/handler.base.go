// Package basehdl chứa các helper dùng chung cho mọi handler:
// parse/validate request body, đọc thông tin principal từ context
// và chuẩn hóa response trả về cho client.
package basehdl

import (
	"task_manager/internal/common"
	"task_manager/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseAndValidateBody bind JSON body vào struct input và chạy validator.
// Trả về lỗi định dạng nếu body không phải JSON hợp lệ, lỗi validation
// nếu input không thỏa các tag validate.
func ParseAndValidateBody[Input any](c fiber.Ctx) (*Input, error) {
	var input Input
	if err := c.Bind().Body(&input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			common.MsgValidationError,
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(&input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			err.Error(),
			common.StatusBadRequest,
			err,
		)
	}
	return &input, nil
}

// ParseObjectIDParam đọc một path param và chuyển thành ObjectID.
func ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidId
	}
	return id, nil
}

// UserIDFromContext đọc ObjectID của principal do AuthMiddleware đặt vào Locals.
func UserIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	id, ok := c.Locals("user_id").(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	return id, nil
}

// RoleFromContext đọc role của principal do AuthMiddleware đặt vào Locals.
func RoleFromContext(c fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// DepartmentFromContext đọc department của employee đang đăng nhập (rỗng với role khác).
func DepartmentFromContext(c fiber.Ctx) string {
	department, _ := c.Locals("department").(string)
	return department
}
