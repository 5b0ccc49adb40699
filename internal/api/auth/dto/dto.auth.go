// Package dto - DTO cho domain auth (đăng ký, đăng nhập, cấp tài khoản).
package dto

// RegisterSuperAdminInput dữ liệu đăng ký tài khoản SuperAdmin đầu tiên.
type RegisterSuperAdminInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}

// LoginInput dữ liệu đăng nhập, dùng chung cho cả ba role.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminInput dữ liệu SuperAdmin cấp tài khoản Admin phòng ban.
// Mật khẩu do server sinh ngẫu nhiên, không nằm trong input.
type CreateAdminInput struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Department string `json:"department" validate:"required,oneof=application design production store quality purchase maintenance services"`
}

// CreateEmployeeInput dữ liệu SuperAdmin cấp tài khoản Employee.
type CreateEmployeeInput struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Department    string `json:"department" validate:"required,oneof=application design production store quality purchase maintenance services"`
	Position      string `json:"position,omitempty" validate:"omitempty,max=100"`
	DateOfJoining int64  `json:"dateOfJoining,omitempty" validate:"omitempty,gt=0"`
}

// UpdateProfileInput các trường scalar được phép sửa qua PATCH /auth/update-profile.
// File ảnh đại diện (nếu có) đi trong multipart field "photo", không nằm ở đây.
type UpdateProfileInput struct {
	Name     string `json:"name,omitempty" form:"name" validate:"omitempty,min=2,max=100"`
	Phone    string `json:"phone,omitempty" form:"phone" validate:"omitempty,min=8,max=20"`
	Position string `json:"position,omitempty" form:"position" validate:"omitempty,max=100"`
}

// LoginResult kết quả đăng nhập: token kèm thông tin tài khoản.
type LoginResult struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  interface{} `json:"user"`
}

// ProvisionedAccount kết quả cấp tài khoản: trả mật khẩu plaintext đúng một lần.
type ProvisionedAccount struct {
	User     interface{} `json:"user"`
	Password string      `json:"password"`
}
