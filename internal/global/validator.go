package global

import (
	"context"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("object_id", validateObjectId)
	_ = Validate.RegisterValidation("exists", validateExists)
}

// validateStrongPassword kiểm tra mật khẩu mạnh:
// tối thiểu 8 ký tự và ít nhất 3 trong 4 nhóm (hoa, thường, số, ký tự đặc biệt)
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateObjectId kiểm tra chuỗi có phải là ObjectID hex hợp lệ hay không.
// Chuỗi rỗng được bỏ qua (dùng kèm omitempty cho trường optional).
func validateObjectId(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateExists kiểm tra ObjectID tồn tại trong collection (foreign key validation)
// Format: validate:"exists=<collection_name>"
// Ví dụ: validate:"exists=projects"
func validateExists(fl validator.FieldLevel) bool {
	value := fl.Field()

	// Lấy collection name từ param
	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	// Convert value sang ObjectID
	var objID primitive.ObjectID
	switch v := value.Interface().(type) {
	case string:
		if v == "" {
			return true // Empty string = optional, skip validation (nếu có omitempty)
		}
		var err error
		objID, err = primitive.ObjectIDFromHex(v)
		if err != nil {
			return false
		}
	case primitive.ObjectID:
		if v == primitive.NilObjectID {
			return true // Nil ObjectID = optional, skip validation
		}
		objID = v
	case *primitive.ObjectID:
		if v == nil {
			return true // Nil pointer = optional, skip validation
		}
		objID = *v
	default:
		// Không phải ObjectID → không validate
		return false
	}

	// Lấy collection từ registry
	collection, exist := RegistryCollections.Get(collectionName)
	if !exist {
		// Collection không tồn tại trong registry → không thể validate
		return false
	}

	// Query database để check tồn tại
	ctx := context.Background()
	count, err := collection.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return false
	}

	return count > 0
}
