// Package tasksvc - Test các nhánh quyền và ràng buộc của luồng phân công,
// kết thúc nhiệm vụ và thao tác tệp nộp (các đường đi không chạm database).
package tasksvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	authmodels "task_manager/internal/api/auth/models"
	models "task_manager/internal/api/task/models"
	"task_manager/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignTask_RoleKhongCoQuyenPhanCong(t *testing.T) {
	svc := &TaskService{}
	for _, role := range []string{authmodels.RoleEmployee, "", "superadmin "} {
		_, err := svc.AssignTask(context.Background(), primitive.NewObjectID(), nil, models.PrincipalRef{
			Role: role,
			ID:   primitive.NewObjectID(),
		})
		if !errors.Is(err, common.ErrForbidden) {
			t.Errorf("AssignTask với role %q: muốn ErrForbidden, nhận %v", role, err)
		}
	}
}

func TestAssignToAdmin_NguoiTaoKhongPhaiSuperAdmin(t *testing.T) {
	svc := &TaskService{}
	task := models.Task{
		ID: primitive.NewObjectID(),
		CreatedBy: models.PrincipalRef{
			Role: authmodels.RoleAdmin,
			ID:   primitive.NewObjectID(),
		},
	}
	caller := models.PrincipalRef{Role: authmodels.RoleSuperAdmin, ID: primitive.NewObjectID()}

	_, err := svc.assignToAdmin(context.Background(), &task, primitive.NewObjectID(), caller)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Giao cho admin trên nhiệm vụ không do superadmin tạo: muốn ErrForbidden, nhận %v", err)
	}
}

func TestBuildAssignmentEntries_KhongConAiHopLe(t *testing.T) {
	task := models.Task{CurrentDepartment: "media"}

	_, _, _, err := buildAssignmentEntries(&task, nil)
	if !errors.Is(err, common.ErrNoAssignee) {
		t.Errorf("Danh sách employee rỗng: muốn ErrNoAssignee, nhận %v", err)
	}
	_, _, _, err = buildAssignmentEntries(&task, []authmodels.Employee{})
	if !errors.Is(err, common.ErrNoAssignee) {
		t.Errorf("Danh sách employee rỗng (khác nil): muốn ErrNoAssignee, nhận %v", err)
	}
}

func TestBuildAssignmentEntries_ChiTinhNhanVienMoi(t *testing.T) {
	daPhanCong := authmodels.Employee{ID: primitive.NewObjectID(), Name: "Ngân", Department: "media"}
	moi := authmodels.Employee{ID: primitive.NewObjectID(), Name: "Tuấn", Department: "media"}
	task := models.Task{
		CurrentDepartment: "media",
		AssignedTo: []models.AssignedEntry{
			{EmployeeID: daPhanCong.ID, Department: daPhanCong.Department},
		},
	}

	entries, names, newlyAssigned, err := buildAssignmentEntries(&task, []authmodels.Employee{daPhanCong, moi})
	if err != nil {
		t.Fatalf("buildAssignmentEntries trả lỗi: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Số mục assignedTo = %d, muốn 2", len(entries))
	}
	if len(names) != 2 || names[0] != "Ngân" || names[1] != "Tuấn" {
		t.Errorf("Danh sách tên = %v, muốn [Ngân Tuấn]", names)
	}
	if len(newlyAssigned) != 1 || newlyAssigned[0] != moi.ID {
		t.Errorf("newlyAssigned = %v, muốn chỉ gồm nhân viên chưa được phân công", newlyAssigned)
	}
}

func TestStatusGuardError(t *testing.T) {
	if err := statusGuardError(common.ErrNotFound); !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("Filter trạng thái không khớp: muốn ErrInvalidState, nhận %v", err)
	}
	wrapped := fmt.Errorf("cập nhật nhiệm vụ: %w", common.ErrNotFound)
	if err := statusGuardError(wrapped); !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("ErrNotFound bọc qua %%w: muốn ErrInvalidState, nhận %v", err)
	}
	if err := statusGuardError(common.ErrDuplicate); !errors.Is(err, common.ErrDuplicate) {
		t.Errorf("Lỗi khác phải giữ nguyên, nhận %v", err)
	}
}

func TestValidateSubmission_ChiXacNhanTepCuaChinhMinh(t *testing.T) {
	svc := &TaskService{}
	employeeID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	_, err := svc.ValidateSubmission(context.Background(), primitive.NewObjectID(), employeeID, callerID)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Xác nhận tệp của nhân viên khác: muốn ErrForbidden, nhận %v", err)
	}
}

func TestDeleteSubmission_ChiRutTepCuaChinhMinh(t *testing.T) {
	svc := &TaskService{}
	employeeID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	_, err := svc.DeleteSubmission(context.Background(), primitive.NewObjectID(), employeeID, callerID)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Rút tệp của nhân viên khác: muốn ErrForbidden, nhận %v", err)
	}
}
