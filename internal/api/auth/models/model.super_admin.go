// Package models - model tài khoản SuperAdmin (collection super_admins).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuperAdmin là tài khoản quản trị cấp cao nhất, có quyền tạo Admin/Employee,
// tạo dự án và phân công nhiệm vụ cho Admin.
type SuperAdmin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	PhotoURL  string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
