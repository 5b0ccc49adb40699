package basehdl

import (
	"errors"
	"fmt"
	"task_manager/internal/common"
	"task_manager/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SafeHandlerWrapper bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("path", c.Path()).Errorf("panic trong handler: %v", r)
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Hàm này đảm bảo format response thống nhất trong toàn bộ ứng dụng:
//   - Thành công: {code, message, data, status: "success"}
//   - Lỗi:        {code, message, details, status: "error"}
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
		}
		// Nếu không phải custom error, trả về internal server error
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	// Trường hợp thành công
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleCreatedResponse trả về response 201 cho các thao tác tạo mới tài nguyên.
func HandleCreatedResponse(c fiber.Ctx, data interface{}) error {
	return JSONResponse(c, common.StatusCreated, fiber.Map{
		"code":    common.StatusCreated,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
