// Package models - model nhiệm vụ (collection tasks) và các sub-document
// nhúng: chuỗi phân công, deadline theo phòng ban, tệp nộp và nhật ký cập nhật.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của nhiệm vụ.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In-Progress"
	StatusCompleted  = "Completed"
	StatusRejected   = "Rejected"
)

// Mức ưu tiên của nhiệm vụ.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// AssignedEntry là một cặp {employeeId, department} trong chuỗi phân công.
// assignedTo được xử lý như một set: cùng cặp giá trị không được thêm hai lần.
type AssignedEntry struct {
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	Department string             `json:"department" bson:"department"`
}

// DepartmentDeadline là deadline của nhiệm vụ tại một phòng ban.
type DepartmentDeadline struct {
	Department string `json:"department" bson:"department"`
	Deadline   int64  `json:"deadline" bson:"deadline"`
}

// SubmissionFile là một tệp kết quả do nhân viên nộp.
// SelfValidated do chính nhân viên đó bật qua thao tác validate.
type SubmissionFile struct {
	UploadedBy     primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy"`
	UploadedByRole string             `json:"uploadedByRole" bson:"uploadedByRole"`
	FileName       string             `json:"fileName" bson:"fileName"`
	FilePath       string             `json:"filePath" bson:"filePath"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	Department     string             `json:"department" bson:"department"`
	UploadedAt     int64              `json:"uploadedAt" bson:"uploadedAt"`
	SelfValidated  bool               `json:"selfValidated" bson:"selfValidated"`
}

// UpdateLog là một mục nhật ký của nhiệm vụ. Nhật ký chỉ được append,
// không sửa hay xóa mục đã ghi.
type UpdateLog struct {
	UpdatedBy     primitive.ObjectID `json:"updatedBy" bson:"updatedBy"`
	UpdatedByRole string             `json:"updatedByRole" bson:"updatedByRole"`
	Note          string             `json:"note" bson:"note"`
	Timestamp     int64              `json:"timestamp" bson:"timestamp"`
}

// Task là thực thể trung tâm của hệ thống: đi qua chuỗi phân công
// SuperAdmin → Admin (initiallyAssignedTo) rồi Admin → Employees (assignedTo),
// nhận tệp nộp từ nhân viên và ghi lại mọi thay đổi trong updateLogs.
type Task struct {
	ID                  primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title               string               `json:"title" bson:"title"`
	Description         string               `json:"description,omitempty" bson:"description,omitempty"`
	Project             primitive.ObjectID   `json:"project" bson:"project"`
	Status              string               `json:"status" bson:"status" index:"single:1"`
	Priority            string               `json:"priority" bson:"priority"`
	CreatedBy           PrincipalRef         `json:"createdBy" bson:"createdBy"`
	CurrentDepartment   string               `json:"currentDepartment" bson:"currentDepartment"`
	NextDepartment      string               `json:"nextDepartment,omitempty" bson:"nextDepartment,omitempty"`
	Deadline            int64                `json:"deadline,omitempty" bson:"deadline,omitempty"`
	InitiallyAssignedTo primitive.ObjectID   `json:"initiallyAssignedTo,omitempty" bson:"initiallyAssignedTo,omitempty"`
	InitiallyAssignedBy *PrincipalRef        `json:"initiallyAssignedBy,omitempty" bson:"initiallyAssignedBy,omitempty"`
	AssignedTo          []AssignedEntry      `json:"assignedTo" bson:"assignedTo"`
	DepartmentDeadlines []DepartmentDeadline `json:"departmentDeadlines" bson:"departmentDeadlines"`
	SubmissionFiles     []SubmissionFile     `json:"submissionFiles" bson:"submissionFiles"`
	UpdateLogs          []UpdateLog          `json:"updateLogs" bson:"updateLogs"`
	CreatedAt           int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64                `json:"updatedAt" bson:"updatedAt"`
}

// HasAssignee kiểm tra cặp (employeeId, department) có trong assignedTo không.
// Phép so khớp phải đúng đồng thời cả hai trường.
func (t *Task) HasAssignee(employeeID primitive.ObjectID, department string) bool {
	for _, entry := range t.AssignedTo {
		if entry.EmployeeID == employeeID && entry.Department == department {
			return true
		}
	}
	return false
}

// SubmissionsBy trả về các tệp nộp của một nhân viên trên nhiệm vụ.
func (t *Task) SubmissionsBy(employeeID primitive.ObjectID) []SubmissionFile {
	var files []SubmissionFile
	for _, f := range t.SubmissionFiles {
		if f.UploadedBy == employeeID {
			files = append(files, f)
		}
	}
	return files
}
