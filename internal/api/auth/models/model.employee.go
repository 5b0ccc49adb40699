// Package models - model tài khoản Employee (collection employees).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeTaskStats đếm số nhiệm vụ theo trạng thái của một nhân viên.
// Các counter được tăng bằng $inc khi nhiệm vụ chuyển trạng thái.
type EmployeeTaskStats struct {
	Assigned  int64 `json:"assigned" bson:"assigned"`
	Completed int64 `json:"completed" bson:"completed"`
	Rejected  int64 `json:"rejected" bson:"rejected"`
}

// Employee là nhân viên thuộc một phòng ban, nhận nhiệm vụ từ Admin,
// nộp file kết quả và tự xác nhận phần nộp của mình.
type Employee struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name                string             `json:"name" bson:"name"`
	Email               string             `json:"email" bson:"email" index:"unique"`
	Password            string             `json:"-" bson:"password"`
	Phone               string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Department          string             `json:"department" bson:"department" index:"single:1"`
	Position            string             `json:"position,omitempty" bson:"position,omitempty"`
	PhotoURL            string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	DateOfJoining       int64              `json:"dateOfJoining,omitempty" bson:"dateOfJoining,omitempty"`
	CompanyLeavingDate  int64              `json:"companyLeavingDate,omitempty" bson:"companyLeavingDate,omitempty"`
	TaskStats           EmployeeTaskStats  `json:"taskStats" bson:"taskStats"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt"`
}
