// Package utility - Test tạo và giải mã JWT token.
package utility

import (
	"errors"
	"testing"
	"time"

	"task_manager/internal/common"

	"github.com/dgrijalva/jwt-go"
)

func TestCreateToken_ParseToken_Roundtrip(t *testing.T) {
	claims := &TokenClaims{
		UserID:     "650000000000000000000001",
		Email:      "admin@example.com",
		Role:       "admin",
		Department: "design",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := CreateToken("secret-test", claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	parsed, err := ParseToken("secret-test", token)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi: %v", err)
	}
	if parsed.UserID != claims.UserID {
		t.Errorf("UserID = %q, muốn %q", parsed.UserID, claims.UserID)
	}
	if parsed.Role != "admin" {
		t.Errorf("Role = %q, muốn admin", parsed.Role)
	}
	if parsed.Department != "design" {
		t.Errorf("Department = %q, muốn design", parsed.Department)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	claims := &TokenClaims{
		UserID: "650000000000000000000001",
		Role:   "employee",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := CreateToken("secret-a", claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	_, err = ParseToken("secret-b", token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("token ký sai secret phải trả về ErrTokenInvalid, nhận: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	claims := &TokenClaims{
		UserID: "650000000000000000000001",
		Role:   "employee",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := CreateToken("secret-test", claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	_, err = ParseToken("secret-test", token)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("token hết hạn phải trả về ErrTokenExpired, nhận: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret-test", "khong.phai.jwt")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("chuỗi không phải JWT phải trả về ErrTokenInvalid, nhận: %v", err)
	}
}
