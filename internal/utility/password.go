package utility

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// passwordCharset là bảng ký tự dùng để sinh mật khẩu cấp phát.
// Loại bỏ các ký tự dễ nhầm lẫn (0/O, 1/l/I).
const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu với hash đã lưu.
// Trả về true nếu khớp.
func ComparePassword(hashedPassword string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GeneratePassword sinh mật khẩu ngẫu nhiên an toàn (crypto/rand) với độ dài cho trước.
// Dùng khi cấp phát tài khoản Admin/Employee, mật khẩu chỉ trả về một lần.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = 12
	}
	max := big.NewInt(int64(len(passwordCharset)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = passwordCharset[n.Int64()]
	}
	return string(result), nil
}
