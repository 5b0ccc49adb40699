// Package models - Test các helper trên model Task.
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHasAssignee_MatchBothFields(t *testing.T) {
	employeeID := primitive.NewObjectID()
	task := &Task{
		AssignedTo: []AssignedEntry{
			{EmployeeID: employeeID, Department: "design"},
		},
	}

	if !task.HasAssignee(employeeID, "design") {
		t.Error("cặp (employeeId, department) đúng phải được tìm thấy")
	}
	if task.HasAssignee(employeeID, "production") {
		t.Error("cùng employeeId nhưng khác department không được khớp")
	}
	if task.HasAssignee(primitive.NewObjectID(), "design") {
		t.Error("cùng department nhưng khác employeeId không được khớp")
	}
}

func TestHasAssignee_EmptyList(t *testing.T) {
	task := &Task{}
	if task.HasAssignee(primitive.NewObjectID(), "design") {
		t.Error("nhiệm vụ chưa phân công không được khớp bất kỳ ai")
	}
}

func TestSubmissionsBy(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	task := &Task{
		SubmissionFiles: []SubmissionFile{
			{UploadedBy: a, FileName: "bao-cao-1.pdf"},
			{UploadedBy: b, FileName: "bao-cao-2.pdf"},
			{UploadedBy: a, FileName: "bao-cao-3.pdf"},
		},
	}

	files := task.SubmissionsBy(a)
	if len(files) != 2 {
		t.Fatalf("nhân viên a có %d tệp, muốn 2", len(files))
	}
	if files[0].FileName != "bao-cao-1.pdf" || files[1].FileName != "bao-cao-3.pdf" {
		t.Errorf("thứ tự tệp nộp phải được giữ nguyên: %v", files)
	}

	if got := task.SubmissionsBy(primitive.NewObjectID()); len(got) != 0 {
		t.Errorf("nhân viên chưa nộp phải trả về danh sách rỗng, nhận %d tệp", len(got))
	}
}
