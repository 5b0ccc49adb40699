package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest       = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized     = 401 // Chưa xác thực
	StatusForbidden        = 403 // Không có quyền truy cập
	StatusNotFound         = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict         = 409 // Xung đột dữ liệu
	StatusPayloadTooLarge  = 413 // Dữ liệu gửi lên quá lớn
	StatusTooManyRequests  = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Thao tác thành công"
	MsgCreated = "Tạo mới thành công"

	// Error Messages
	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgConflict        = "Xung đột dữ liệu"
	MsgTooManyRequests = "Quá nhiều yêu cầu"
	MsgInternalError   = "Lỗi hệ thống"

	// Token Messages
	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Token)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Lỗi xác thực chung",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Lỗi liên quan đến vai trò người dùng",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	// File Errors (FILE_xxx)
	ErrCodeFile = ErrorCode{
		Code:        "FILE_001",
		Category:    "File",
		SubCategory: "Upload",
		Description: "Lỗi tải tệp lên",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Phiên đăng nhập đã hết hạn", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, "Không có quyền thực hiện thao tác này", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Không tìm thấy thông tin người dùng", StatusNotFound, nil)
	ErrEmailTaken         = NewError(ErrCodeAuthCredentials, "Email đã được sử dụng", StatusConflict, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Email không đúng định dạng", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "Mật khẩu quá yếu", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrInvalidId     = NewError(ErrCodeValidationFormat, "Định danh không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConstraint  = NewError(ErrCodeDatabaseQuery, "Vi phạm ràng buộc dữ liệu", StatusBadRequest, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Lỗi giao dịch cơ sở dữ liệu", StatusInternalServerError, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)
	ErrNotAssigned      = NewError(ErrCodeBusinessOperation, "Nhân viên chưa được phân công nhiệm vụ này", StatusForbidden, nil)
	ErrNoSubmission     = NewError(ErrCodeBusinessOperation, "Nhân viên chưa nộp tệp nào cho nhiệm vụ này", StatusNotFound, nil)
	ErrNoAssignee       = NewError(ErrCodeBusinessOperation, "Không có nhân viên hợp lệ để phân công", StatusBadRequest, nil)

	// File Errors
	ErrTooManyFiles    = NewError(ErrCodeFile, "Vượt quá số lượng tệp cho phép", StatusBadRequest, nil)
	ErrFileTooLarge    = NewError(ErrCodeFile, "Tệp vượt quá kích thước cho phép", StatusPayloadTooLarge, nil)
	ErrFileTypeInvalid = NewError(ErrCodeFile, "Loại tệp không được hỗ trợ", StatusBadRequest, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound đã được chuẩn hóa, không convert lại
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return ErrConnection
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, mongoErr.Message)
	}

	// Nếu không nhận diện được lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
