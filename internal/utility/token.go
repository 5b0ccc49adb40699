package utility

import (
	"fmt"

	"task_manager/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims chứa data được mã hóa trong JWT token.
// Role quyết định collection dùng để tra cứu người gọi khi xác thực.
type TokenClaims struct {
	UserID     string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token đã ký với secret và claims cho trước
func CreateToken(secret string, claims *TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("không thể ký token: %w", err)
	}
	return signed, nil
}

// ParseToken giải mã và xác minh JWT token, trả về claims nếu hợp lệ
func ParseToken(secret string, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
