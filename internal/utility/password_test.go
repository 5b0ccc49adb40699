// Package utility - Test sinh và băm mật khẩu cấp phát.
package utility

import (
	"strings"
	"testing"
)

func TestHashPassword_ComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if hashed == "MatKhau@123" {
		t.Error("HashPassword không được trả về mật khẩu gốc")
	}
	if !ComparePassword(hashed, "MatKhau@123") {
		t.Error("ComparePassword phải khớp với mật khẩu đúng")
	}
	if ComparePassword(hashed, "MatKhauSai") {
		t.Error("ComparePassword không được khớp với mật khẩu sai")
	}
}

func TestGeneratePassword_LengthAndCharset(t *testing.T) {
	password, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword trả về lỗi: %v", err)
	}
	if len(password) != 16 {
		t.Errorf("GeneratePassword(16) có độ dài %d, muốn 16", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune(passwordCharset, ch) {
			t.Errorf("mật khẩu chứa ký tự ngoài bảng cho phép: %q", ch)
		}
	}
}

func TestGeneratePassword_DefaultLength(t *testing.T) {
	password, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword trả về lỗi: %v", err)
	}
	if len(password) != 12 {
		t.Errorf("GeneratePassword(0) phải dùng độ dài mặc định 12, nhận %d", len(password))
	}
}

func TestGeneratePassword_NotRepeating(t *testing.T) {
	a, err := GeneratePassword(12)
	if err != nil {
		t.Fatalf("GeneratePassword trả về lỗi: %v", err)
	}
	b, err := GeneratePassword(12)
	if err != nil {
		t.Fatalf("GeneratePassword trả về lỗi: %v", err)
	}
	if a == b {
		t.Error("hai mật khẩu sinh liên tiếp không được giống nhau")
	}
}
