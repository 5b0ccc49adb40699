// Package models - model dự án (collection projects) thuộc domain task.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrincipalRef tham chiếu đến người thực hiện thao tác dưới dạng tagged union
// {role, id}: role xác định collection chứa tài khoản, id là _id trong collection đó.
type PrincipalRef struct {
	Role string             `json:"role" bson:"role"`
	ID   primitive.ObjectID `json:"id" bson:"id"`
}

// Project là nhóm chứa các nhiệm vụ, do SuperAdmin hoặc Admin tạo.
type Project struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy   PrincipalRef       `json:"createdBy" bson:"createdBy"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
