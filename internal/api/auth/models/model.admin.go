// Package models - model tài khoản Admin phòng ban (collection admins).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin là quản trị viên của một phòng ban. Admin nhận nhiệm vụ từ SuperAdmin
// và phân công lại cho các Employee cùng phòng ban.
type Admin struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email" index:"unique"`
	Password   string             `json:"-" bson:"password"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Department string             `json:"department" bson:"department" index:"single:1"`
	PhotoURL   string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
