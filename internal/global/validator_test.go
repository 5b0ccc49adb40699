// Package global - Test các custom validator không cần kết nối database.
package global

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	type input struct {
		Password string `validate:"strong_password"`
	}

	valid := []string{"MatKhau123", "abc12345!", "Admin@2024", "XyZ#9999"}
	for _, p := range valid {
		if err := Validate.Struct(input{Password: p}); err != nil {
			t.Errorf("mật khẩu %q phải hợp lệ, nhận lỗi: %v", p, err)
		}
	}

	invalid := []string{"", "ngan", "chithuong", "CHIHOA123 KHONG", "12345678", "Ab1"}
	for _, p := range invalid {
		if err := Validate.Struct(input{Password: p}); err == nil {
			t.Errorf("mật khẩu %q phải bị từ chối", p)
		}
	}
}

func TestValidateObjectId(t *testing.T) {
	InitValidator()

	type input struct {
		ID string `validate:"object_id"`
	}

	if err := Validate.Struct(input{ID: primitive.NewObjectID().Hex()}); err != nil {
		t.Errorf("ObjectID hex hợp lệ phải được chấp nhận, nhận lỗi: %v", err)
	}
	if err := Validate.Struct(input{ID: ""}); err != nil {
		t.Errorf("chuỗi rỗng phải được bỏ qua (dành cho omitempty), nhận lỗi: %v", err)
	}
	if err := Validate.Struct(input{ID: "khong-phai-hex"}); err == nil {
		t.Error("chuỗi không phải hex phải bị từ chối")
	}
	if err := Validate.Struct(input{ID: "abc123"}); err == nil {
		t.Error("hex sai độ dài phải bị từ chối")
	}
}
